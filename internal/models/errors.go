package models

import "errors"

// Custom errors
var (
	ErrNotFound         = errors.New("fixture not found")
	ErrInvalidLiveStats = errors.New("invalid live stats")
	ErrInvalidOdds      = errors.New("invalid odds input")
)
