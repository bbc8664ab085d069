package types

import "errors"

// Store lifecycle errors.
var (
	ErrNotInitialized  = errors.New("catalog store is not initialized")
	ErrAlreadyAttached = errors.New("catalog store is already attached")
)

// Query and mutation errors.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidID         = errors.New("invalid formula ID")
	ErrInvalidKey        = errors.New("preference key must not be empty")
	ErrInvalidDifficulty = errors.New("invalid difficulty level")
)
