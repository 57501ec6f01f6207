package homework

import "errors"

// Validation errors for API responses.
var (
	ErrNotAnObject     = errors.New("response is not a JSON object")
	ErrEmptyResponse   = errors.New(`response has no "homeworks" key`)
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// Parsing errors for a single homework record.
var (
	ErrMissingField  = errors.New("homework record is missing a required field")
	ErrUnknownStatus = errors.New("unknown homework status")
)
