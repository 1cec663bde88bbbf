package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// SETNX on the name index enforces name uniqueness atomically
	claimed, err := s.client.SetNX(ctx, nameIndexKey(player.Name), string(player.ID), 0).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrNameTaken
	}

	return s.client.Set(ctx, playerKey(player.ID), data, 0).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	// Look up player ID from name index
	playerIDStr, err := s.client.Get(ctx, nameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(playerIDStr))
}

func (s *Storage) PlayerExists(ctx context.Context, name string) (bool, error) {
	count, err := s.client.Exists(ctx, nameIndexKey(name)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, nameIndexKey(player.Name))
	_, err = pipe.Exec(ctx)
	return err
}

// Roll operations

func (s *Storage) SaveRoll(ctx context.Context, roll *model.Roll) error {
	data, err := json.Marshal(roll)
	if err != nil {
		return err
	}

	key := rollsKey(roll.PlayerID)

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)
	if s.cfg.RollTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.RollTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRollsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Roll, error) {
	entries, err := s.client.LRange(ctx, rollsKey(playerID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	rolls := make([]*model.Roll, 0, len(entries))
	for _, entry := range entries {
		var roll model.Roll
		if err := json.Unmarshal([]byte(entry), &roll); err != nil {
			return nil, err
		}
		rolls = append(rolls, &roll)
	}
	return rolls, nil
}

func (s *Storage) DeleteRollsForPlayer(ctx context.Context, playerID model.PlayerID) error {
	return s.client.Del(ctx, rollsKey(playerID)).Err()
}
