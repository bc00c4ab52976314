package usecase

import "errors"

// Sentinel errors the HTTP layer maps onto status codes. Wrap with
// fmt.Errorf("%w: detail") so the detail survives into the response.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
