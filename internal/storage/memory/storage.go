package memory

import (
	"context"
	"sync"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players   map[model.PlayerID]*model.Player
	nameIndex map[string]model.PlayerID
	rolls     map[model.PlayerID][]*model.Roll
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:   make(map[model.PlayerID]*model.Player),
		nameIndex: make(map[string]model.PlayerID),
		rolls:     make(map[model.PlayerID][]*model.Roll),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nameIndex[player.Name]; ok {
		return model.ErrNameTaken
	}
	s.players[player.ID] = player
	s.nameIndex[player.Name] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) PlayerExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nameIndex[name]
	return ok, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if player, ok := s.players[id]; ok {
		delete(s.nameIndex, player.Name)
	}
	delete(s.players, id)
	return nil
}

// Roll operations

func (s *Storage) SaveRoll(ctx context.Context, roll *model.Roll) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rolls[roll.PlayerID] = append(s.rolls[roll.PlayerID], roll)
	return nil
}

func (s *Storage) GetRollsForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Roll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rolls := s.rolls[playerID]
	result := make([]*model.Roll, len(rolls))
	copy(result, rolls)
	return result, nil
}

func (s *Storage) DeleteRollsForPlayer(ctx context.Context, playerID model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rolls, playerID)
	return nil
}
