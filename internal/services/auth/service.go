package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dicegame/dicegame/internal/dependencies/clock"
	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/services/token"
	"github.com/dicegame/dicegame/internal/storage"
)

// Outcome is the result of a register or login operation. Success is
// distinguished by Token being non-empty; Message is always set and safe to
// return to the caller.
type Outcome struct {
	Token   string
	Message string
	Player  *model.Player
}

// Service sequences validation, store mutation/lookup, token issuance and
// outcome construction for the register and login flows.
//
// Both flows report failures the same way: an *InvalidCredentialsError return
// that the HTTP boundary converts into a client-visible response. Neither flow
// retries; a failure is terminal for that request.
type Service struct {
	storage   storage.Storage
	validator *Validator
	codec     *token.Codec
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new authentication service
func New(store storage.Storage, codec *token.Codec, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   store,
		validator: NewValidator(store),
		codec:     codec,
		clock:     clk,
		logger:    logger,
	}
}

// Register creates a new player and issues a token for it
func (s *Service) Register(ctx context.Context, creds *model.Credentials) (*Outcome, error) {
	name, err := s.validator.ValidateRegistration(ctx, creds)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:           model.PlayerID(uuid.NewString()),
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		if errors.Is(err, model.ErrNameTaken) {
			// Lost a race with a concurrent registration on the same name
			return nil, NewInvalidCredentials(fmt.Sprintf(
				"User by name %s already exists. Please select another name.", name))
		}
		return nil, err
	}

	// Consistency guard: the name the store persisted must be the name we
	// asked for, or the token would be bound to the wrong identity
	persisted, err := s.storage.GetPlayerByName(ctx, name)
	if err != nil || persisted.Name != name || persisted.ID != player.ID {
		return nil, NewInvalidCredentials("Something went wrong. Please try again.")
	}

	tok, err := s.codec.Issue(player.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player registered", slog.String("name", name))

	message := fmt.Sprintf("User registered with name: %s", name)
	if strings.TrimSpace(creds.Name) == "" {
		message = fmt.Sprintf("User registered with default name: %s", name)
	}

	return &Outcome{
		Token:   tok,
		Message: message,
		Player:  player,
	}, nil
}

// Login authenticates an existing player by name and password and issues a
// token. Wrong name and wrong password are deliberately indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, creds *model.Credentials) (*Outcome, error) {
	if err := s.validator.ValidateLogin(creds); err != nil {
		return nil, err
	}

	noMatch := NewInvalidCredentials(fmt.Sprintf(
		"User %s does not exist or password is incorrect.", creds.Name))

	player, err := s.storage.GetPlayerByName(ctx, creds.Name)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil, noMatch
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, noMatch
	}

	tok, err := s.codec.Issue(player.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("player logged in", slog.String("name", player.Name))

	return &Outcome{
		Token:   tok,
		Message: fmt.Sprintf("User %s logged in successfully.", player.Name),
		Player:  player,
	}, nil
}
