package services

import "errors"

// Error taxonomy surfaced by the services layer. Controllers map
// ErrInvalidInput to 400 and ErrNotFound to 404. Generative-path failures are
// never surfaced; they are absorbed by the template fallback.
var (
    ErrInvalidInput = errors.New("invalid input")
    ErrNotFound     = errors.New("not found")
    ErrConflict     = errors.New("conflict")
)
