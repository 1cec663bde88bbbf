package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/services/auth"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: register, login and play through the services as wired by the factory
func (s *IntegrationSuite) TestRegisterLoginAndPlay() {
	// Step 1: Register
	registered, err := s.app.AuthService.Register(s.ctx,
		&model.Credentials{Name: "Alice", Password: "secret"})
	s.Require().NoError(err)
	s.NotEmpty(registered.Token)

	// Step 2: The token resolves back to the registered player
	subject, err := s.app.TokenCodec.Verify(registered.Token)
	s.Require().NoError(err)
	s.Equal(registered.Player.ID, subject)

	player, err := s.app.Storage.GetPlayer(s.ctx, subject)
	s.Require().NoError(err)
	s.Equal("Alice", player.Name)

	// Step 3: Login with the same credentials
	loggedIn, err := s.app.AuthService.Login(s.ctx,
		&model.Credentials{Name: "Alice", Password: "secret"})
	s.Require().NoError(err)
	s.NotEmpty(loggedIn.Token)
	s.Equal(registered.Player.ID, loggedIn.Player.ID)

	// Step 4: Play some rounds
	s.app.MockRandom.QueueIntn(2, 3, 0, 0) // win then loss

	winRoll, err := s.app.GameService.Roll(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(model.RollResultWin, winRoll.Result)

	loseRoll, err := s.app.GameService.Roll(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(model.RollResultLose, loseRoll.Result)

	// Step 5: Check history and stats
	stats, err := s.app.GameService.StatsFor(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(2, stats.Rolls)
	s.Equal(1, stats.Wins)
}

// Test: token expiry is driven by the shared clock
func (s *IntegrationSuite) TestTokenExpiresWithClock() {
	registered, err := s.app.AuthService.Register(s.ctx,
		&model.Credentials{Name: "Alice", Password: "secret"})
	s.Require().NoError(err)

	_, err = s.app.TokenCodec.Verify(registered.Token)
	s.Require().NoError(err)

	s.app.MockClock.Advance(2 * time.Hour)

	_, err = s.app.TokenCodec.Verify(registered.Token)
	s.Error(err)
}

// Test: two registrations race for the same name; exactly one wins
func (s *IntegrationSuite) TestDuplicateRegistrationAcrossLogins() {
	_, err := s.app.AuthService.Register(s.ctx,
		&model.Credentials{Name: "Alice", Password: "first"})
	s.Require().NoError(err)

	_, err = s.app.AuthService.Register(s.ctx,
		&model.Credentials{Name: "Alice", Password: "second"})
	var invalidCreds *auth.InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)

	// The first registration's password still logs in
	_, err = s.app.AuthService.Login(s.ctx,
		&model.Credentials{Name: "Alice", Password: "first"})
	s.NoError(err)

	_, err = s.app.AuthService.Login(s.ctx,
		&model.Credentials{Name: "Alice", Password: "second"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRejectsMissingSecret() {
	_, err := New(Config{})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "cassandra"})
	s.Error(err)
}
