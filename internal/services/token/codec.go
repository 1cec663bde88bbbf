package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dicegame/dicegame/internal/dependencies/clock"
	"github.com/dicegame/dicegame/internal/model"
)

// Errors
var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMisconfigured = errors.New("token config invalid")
)

// Tokens live for one hour: long enough for a game session, short enough
// that a leaked token goes stale quickly.
const DefaultTTL = time.Hour

// Config holds configuration for the token codec
type Config struct {
	// Secret is the HMAC signing secret, shared by all server instances
	Secret string
	// TTL is the token lifetime; defaults to DefaultTTL
	TTL time.Duration
}

// Codec creates and verifies signed, time-limited identity tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, so no server-side session table is needed.
type Codec struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewCodec creates a new token codec
func NewCodec(cfg Config, clk clock.Clock) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		clock:  clk,
	}, nil
}

// Issue produces a signed token whose subject is the given player ID and
// whose expiry is now + TTL
func (c *Codec) Issue(playerID model.PlayerID) (string, error) {
	now := c.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   string(playerID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the token's subject.
// A malformed, tampered or expired token yields ErrInvalidToken; verification
// failure is a normal outcome, never a panic.
func (c *Codec) Verify(tokenStr string) (model.PlayerID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return model.PlayerID(claims.Subject), nil
}

// SubjectOf extracts the subject from a well-signed token without checking
// expiry. Intended for use after Verify has succeeded, or where the caller
// accepts a possibly-expired token.
func (c *Codec) SubjectOf(tokenStr string) (model.PlayerID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return model.PlayerID(claims.Subject), nil
}

// TTL returns the configured token lifetime
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

func (c *Codec) keyFunc(_ *jwt.Token) (any, error) {
	return c.secret, nil
}
