package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage/memory"
)

type ValidatorSuite struct {
	suite.Suite
	storage   *memory.Storage
	validator *Validator
	ctx       context.Context
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.storage = memory.New()
	s.validator = NewValidator(s.storage)
	s.ctx = context.Background()
}

// Registration validation

func (s *ValidatorSuite) TestRegistrationFailsWithNilCredentials() {
	_, err := s.validator.ValidateRegistration(s.ctx, nil)

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("Invalid request body", invalidCreds.Message)
}

func (s *ValidatorSuite) TestRegistrationDefaultsBlankName() {
	name, err := s.validator.ValidateRegistration(s.ctx, &model.Credentials{Name: "", Password: "x"})
	s.Require().NoError(err)
	s.Equal("UNKNOWN", name)
}

func (s *ValidatorSuite) TestRegistrationDefaultsWhitespaceName() {
	name, err := s.validator.ValidateRegistration(s.ctx, &model.Credentials{Name: "   ", Password: "x"})
	s.Require().NoError(err)
	s.Equal("UNKNOWN", name)
}

func (s *ValidatorSuite) TestRegistrationPassesValidName() {
	name, err := s.validator.ValidateRegistration(s.ctx, &model.Credentials{Name: "Ann", Password: "x"})
	s.Require().NoError(err)
	s.Equal("Ann", name)
}

func (s *ValidatorSuite) TestRegistrationFailsWhenNameTaken() {
	_ = s.storage.CreatePlayer(s.ctx, &model.Player{
		ID:        "player-1",
		Name:      "Ann",
		CreatedAt: time.Now(),
	})

	_, err := s.validator.ValidateRegistration(s.ctx, &model.Credentials{Name: "Ann", Password: "x"})

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Contains(invalidCreds.Message, "Ann")
	s.Contains(invalidCreds.Message, "already exists")
}

// Login validation

func (s *ValidatorSuite) TestLoginFailsWithNilCredentials() {
	err := s.validator.ValidateLogin(nil)

	var invalidCreds *InvalidCredentialsError
	s.Require().ErrorAs(err, &invalidCreds)
	s.Equal("Invalid request body", invalidCreds.Message)
}

func (s *ValidatorSuite) TestLoginFailsWithBlankName() {
	err := s.validator.ValidateLogin(&model.Credentials{Name: "  ", Password: "x"})
	s.Error(err)
}

func (s *ValidatorSuite) TestLoginFailsWithEmptyPassword() {
	err := s.validator.ValidateLogin(&model.Credentials{Name: "Ann", Password: ""})
	s.Error(err)
}

func (s *ValidatorSuite) TestLoginPassesValidCredentials() {
	err := s.validator.ValidateLogin(&model.Credentials{Name: "Ann", Password: "x"})
	s.NoError(err)
}
