package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultPlayerName is substituted when registration omits a name
const DefaultPlayerName = "UNKNOWN"

// Player represents a registered game participant.
// Name is unique across all players; uniqueness is enforced by the store.
type Player struct {
	ID           PlayerID
	Name         string
	PasswordHash string // bcrypt hash, never the raw password
	CreatedAt    time.Time
}

// Credentials carries the name/password pair supplied with a register or
// login request. A nil *Credentials means the request body was absent or
// unparseable.
type Credentials struct {
	Name     string
	Password string
}
