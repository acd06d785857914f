package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrNoEventToday  = errors.New("no event for the current game day")

	// Game session errors
	ErrInvalidSession   = errors.New("invalid or already finished game session")
	ErrInvalidClueIndex = errors.New("clue index out of range")

	// Player record errors
	ErrRecordNotFound = errors.New("player record not found")
	ErrRecordExists   = errors.New("player record already exists")
	ErrInvalidResult  = errors.New("result predates the player's record")
)
