package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/dicegame/dicegame/internal/model"
	"github.com/dicegame/dicegame/internal/storage"
)

const invalidRequestBody = "Invalid request body"

// Validator enforces registration and login input rules against the player store
type Validator struct {
	storage storage.Storage
}

// NewValidator creates a new credential validator
func NewValidator(store storage.Storage) *Validator {
	return &Validator{storage: store}
}

// ValidateRegistration checks a registration payload and returns the name to
// register under. A blank name is repaired to model.DefaultPlayerName rather
// than rejected; registration is deliberately forgiving where login is strict.
func (v *Validator) ValidateRegistration(ctx context.Context, creds *model.Credentials) (string, error) {
	if creds == nil {
		return "", NewInvalidCredentials(invalidRequestBody)
	}

	name := creds.Name
	if strings.TrimSpace(name) == "" {
		name = model.DefaultPlayerName
	}

	exists, err := v.storage.PlayerExists(ctx, name)
	if err != nil {
		return "", err
	}
	if exists {
		return "", NewInvalidCredentials(fmt.Sprintf(
			"User by name %s already exists. Please select another name.", name))
	}

	return name, nil
}

// ValidateLogin checks a login payload. Unlike registration, a blank name or
// empty password is a failure.
func (v *Validator) ValidateLogin(creds *model.Credentials) error {
	if creds == nil || strings.TrimSpace(creds.Name) == "" || creds.Password == "" {
		return NewInvalidCredentials(invalidRequestBody)
	}
	return nil
}
