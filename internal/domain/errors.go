package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// itinerary does not exist or belongs to a different owner. The two cases are
// deliberately merged so that the existence of another user's record is never
// revealed. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing destination, end date before start date,
// negative budget). Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
