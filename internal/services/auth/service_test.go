package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dicegame/dicegame/internal/dependencies/mocks"
	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/services/token"
	"github.com/dicegame/dicegame/internal/storage/memory"
	"github.com/dicegame/dicegame/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	codec   *token.Codec
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	codec, err := token.NewCodec(token.Config{Secret: "test-secret"}, s.clock)
	s.Require().NoError(err)
	s.codec = codec

	s.service = New(s.storage, codec, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	outcome, err := s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})
	s.Require().NoError(err)

	s.NotEmpty(outcome.Token)
	s.Equal("User registered with name: Ann", outcome.Message)
	s.Equal("Ann", outcome.Player.Name)
}

func (s *ServiceSuite) TestRegisterPersistsPlayer() {
	outcome, _ := s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})

	player, err := s.storage.GetPlayerByName(s.ctx, "Ann")
	s.Require().NoError(err)
	s.Equal(outcome.Player.ID, player.ID)
	s.NotEmpty(player.PasswordHash)
	s.NotEqual("secret", player.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterTokenSubjectIsPlayerID() {
	outcome, _ := s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})

	subject, err := s.codec.Verify(outcome.Token)
	s.Require().NoError(err)
	s.Equal(outcome.Player.ID, subject)
}

func (s *ServiceSuite) TestRegisterDefaultsBlankName() {
	outcome, err := s.service.Register(s.ctx, &model.Credentials{Name: "", Password: "x"})
	s.Require().NoError(err)

	s.NotEmpty(outcome.Token)
	s.Equal("User registered with default name: UNKNOWN", outcome.Message)

	player, err := s.storage.GetPlayerByName(s.ctx, "UNKNOWN")
	s.Require().NoError(err)
	s.Equal("UNKNOWN", player.Name)
}

func (s *ServiceSuite) TestRegisterFailsWithNilCredentials() {
	_, err := s.service.Register(s.ctx, nil)

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("Invalid request body", invalidCreds.Message)
}

func (s *ServiceSuite) TestRegisterFailsWhenNameTaken() {
	_, err := s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "y"})
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "z"})

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Contains(invalidCreds.Message, "Ann")
	s.Contains(invalidCreds.Message, "already exists")
}

func (s *ServiceSuite) TestRegisterFailsWhenStoreIsInconsistent() {
	store := &inconsistentStore{Storage: s.storage}
	service := New(store, s.codec, s.clock, testutil.NopLogger())

	_, err := service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "x"})

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("Something went wrong. Please try again.", invalidCreds.Message)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	registered, _ := s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})

	outcome, err := s.service.Login(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})
	s.Require().NoError(err)

	s.NotEmpty(outcome.Token)
	s.Equal("User Ann logged in successfully.", outcome.Message)

	subject, err := s.codec.Verify(outcome.Token)
	s.Require().NoError(err)
	s.Equal(registered.Player.ID, subject)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})

	_, err := s.service.Login(s.ctx, &model.Credentials{Name: "Ann", Password: "wrong"})

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("User Ann does not exist or password is incorrect.", invalidCreds.Message)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownName() {
	_, err := s.service.Login(s.ctx, &model.Credentials{Name: "Ann", Password: "secret"})

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	// The message must not reveal whether the name or the password was wrong
	s.Equal("User Ann does not exist or password is incorrect.", invalidCreds.Message)
}

func (s *ServiceSuite) TestLoginFailsWithNilCredentials() {
	_, err := s.service.Login(s.ctx, nil)

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("Invalid request body", invalidCreds.Message)
}

// inconsistentStore reports a different name than the one persisted,
// simulating a misbehaving store for the register consistency guard
type inconsistentStore struct {
	*memory.Storage
}

func (s *inconsistentStore) GetPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	player, err := s.Storage.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, err
	}
	mangled := *player
	mangled.Name = player.Name + "-mangled"
	return &mangled, nil
}
