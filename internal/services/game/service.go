package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicegame/dicegame/internal/dependencies/clock"
	"github.com/dicegame/dicegame/internal/dependencies/random"
	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage"
)

const dieSides = 6

// Stats summarizes a player's roll history
type Stats struct {
	Rolls   int
	Wins    int
	WinRate float64
}

// Service runs dice rounds for authenticated players and keeps their history
type Service struct {
	storage storage.Storage
	random  random.Random
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new game service
func New(store storage.Storage, rnd random.Random, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		random:  rnd,
		clock:   clk,
		logger:  logger,
	}
}

// Roll plays one round for the player: two dice, a total of seven wins
func (s *Service) Roll(ctx context.Context, playerID model.PlayerID) (*model.Roll, error) {
	die1 := s.random.Intn(dieSides) + 1
	die2 := s.random.Intn(dieSides) + 1

	result := model.RollResultLose
	if die1+die2 == model.WinningTotal {
		result = model.RollResultWin
	}

	roll := &model.Roll{
		ID:       model.RollID(uuid.NewString()),
		PlayerID: playerID,
		Die1:     die1,
		Die2:     die2,
		Result:   result,
		RolledAt: s.clock.Now(),
	}

	if err := s.storage.SaveRoll(ctx, roll); err != nil {
		return nil, err
	}

	s.logger.Info("dice rolled",
		slog.String("player_id", string(playerID)),
		slog.Int("total", roll.Total()),
		slog.String("result", string(result)),
	)

	return roll, nil
}

// History returns the player's rolls in the order they were played
func (s *Service) History(ctx context.Context, playerID model.PlayerID) ([]*model.Roll, error) {
	return s.storage.GetRollsForPlayer(ctx, playerID)
}

// StatsFor computes win statistics over the player's history
func (s *Service) StatsFor(ctx context.Context, playerID model.PlayerID) (*Stats, error) {
	rolls, err := s.storage.GetRollsForPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Rolls: len(rolls)}
	for _, roll := range rolls {
		if roll.Result == model.RollResultWin {
			stats.Wins++
		}
	}
	if stats.Rolls > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Rolls)
	}

	return stats, nil
}

// ClearHistory removes all of the player's rolls
func (s *Service) ClearHistory(ctx context.Context, playerID model.PlayerID) error {
	return s.storage.DeleteRollsForPlayer(ctx, playerID)
}
