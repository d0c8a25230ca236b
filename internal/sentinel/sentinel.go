package sentinel

import "errors"

// Sentinel dependency errors. Stores should return these (optionally wrapped)
// so the matching service can translate them into domain errors exactly once.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
)
