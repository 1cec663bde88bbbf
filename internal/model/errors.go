package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameTaken      = errors.New("player name already taken")

	// Roll errors
	ErrRollNotFound = errors.New("roll not found")
)
