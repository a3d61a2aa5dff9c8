package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidPosition = errors.New("invalid board position")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidBoard    = errors.New("board must be 8x8 cells of 0, 1 or 2")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrAlreadyBanned  = errors.New("player is banned")
	ErrNameTaken      = errors.New("username already taken")
	ErrNotAdmin       = errors.New("administrator secret required")
)
