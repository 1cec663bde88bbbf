package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dicegame/dicegame/internal/dependencies/mocks"
	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage/memory"
	"github.com/dicegame/dicegame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

const playerID = model.PlayerID("player-1")

func (s *ServiceSuite) TestRollTotalOfSevenWins() {
	s.random.QueueIntn(2, 3) // dice land 3 and 4

	roll, err := s.service.Roll(s.ctx, playerID)
	s.Require().NoError(err)

	s.Equal(3, roll.Die1)
	s.Equal(4, roll.Die2)
	s.Equal(7, roll.Total())
	s.Equal(model.RollResultWin, roll.Result)
}

func (s *ServiceSuite) TestRollOtherTotalLoses() {
	s.random.QueueIntn(0, 0) // dice land 1 and 1

	roll, err := s.service.Roll(s.ctx, playerID)
	s.Require().NoError(err)

	s.Equal(2, roll.Total())
	s.Equal(model.RollResultLose, roll.Result)
}

func (s *ServiceSuite) TestRollIsPersisted() {
	s.random.QueueIntn(2, 3)

	roll, err := s.service.Roll(s.ctx, playerID)
	s.Require().NoError(err)

	rolls, err := s.storage.GetRollsForPlayer(s.ctx, playerID)
	s.Require().NoError(err)
	s.Require().Len(rolls, 1)
	s.Equal(roll.ID, rolls[0].ID)
	s.Equal(s.clock.Now(), rolls[0].RolledAt)
}

func (s *ServiceSuite) TestHistoryPreservesOrder() {
	s.random.QueueIntn(2, 3, 0, 0, 5, 1) // win, lose, win

	first, _ := s.service.Roll(s.ctx, playerID)
	second, _ := s.service.Roll(s.ctx, playerID)
	third, _ := s.service.Roll(s.ctx, playerID)

	history, err := s.service.History(s.ctx, playerID)
	s.Require().NoError(err)
	s.Require().Len(history, 3)
	s.Equal(first.ID, history[0].ID)
	s.Equal(second.ID, history[1].ID)
	s.Equal(third.ID, history[2].ID)
}

func (s *ServiceSuite) TestStatsForEmptyHistory() {
	stats, err := s.service.StatsFor(s.ctx, playerID)
	s.Require().NoError(err)

	s.Equal(0, stats.Rolls)
	s.Equal(0, stats.Wins)
	s.Equal(0.0, stats.WinRate)
}

func (s *ServiceSuite) TestStatsForCountsWins() {
	s.random.QueueIntn(2, 3, 0, 0, 5, 1, 1, 1) // win, lose, win, lose

	for i := 0; i < 4; i++ {
		_, err := s.service.Roll(s.ctx, playerID)
		s.Require().NoError(err)
	}

	stats, err := s.service.StatsFor(s.ctx, playerID)
	s.Require().NoError(err)
	s.Equal(4, stats.Rolls)
	s.Equal(2, stats.Wins)
	s.Equal(0.5, stats.WinRate)
}

func (s *ServiceSuite) TestClearHistory() {
	s.random.QueueIntn(2, 3)
	_, err := s.service.Roll(s.ctx, playerID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.ClearHistory(s.ctx, playerID))

	history, err := s.service.History(s.ctx, playerID)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *ServiceSuite) TestRollsAreScopedToPlayer() {
	other := model.PlayerID("player-2")
	s.random.QueueIntn(2, 3, 0, 0)

	_, err := s.service.Roll(s.ctx, playerID)
	s.Require().NoError(err)
	_, err = s.service.Roll(s.ctx, other)
	s.Require().NoError(err)

	mine, err := s.service.History(s.ctx, playerID)
	s.Require().NoError(err)
	s.Len(mine, 1)

	theirs, err := s.service.History(s.ctx, other)
	s.Require().NoError(err)
	s.Len(theirs, 1)
	s.NotEqual(mine[0].ID, theirs[0].ID)
}
