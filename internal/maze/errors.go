package maze

import "errors"

// Import errors. Returned errors wrap one of these with position details;
// match them with [errors.Is].
var (
	ErrSourceUnavailable     = errors.New("maze source unavailable")
	ErrTooFewValues          = errors.New("too few values")
	ErrMalformedValue        = errors.New("value is not an integer")
	ErrInvalidValue          = errors.New("value must be 0 or 1")
	ErrTooManyValues         = errors.New("too many values")
	ErrMissingEntranceOrExit = errors.New("entrance and exit must be open")
)
