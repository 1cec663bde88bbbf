package model

import "time"

// RollID uniquely identifies a single dice roll
type RollID string

// RollResult is the outcome of a roll
type RollResult string

const (
	RollResultWin  RollResult = "win"
	RollResultLose RollResult = "lose"
)

// WinningTotal is the dice total that wins a round
const WinningTotal = 7

// Roll records one round: two dice and the outcome
type Roll struct {
	ID       RollID
	PlayerID PlayerID
	Die1     int
	Die2     int
	Result   RollResult
	RolledAt time.Time
}

// Total returns the combined value of both dice
func (r *Roll) Total() int {
	return r.Die1 + r.Die2
}
