package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested resource
// does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. a missing required field or an empty CSV payload).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrIngestFailed is the generic failure surfaced to callers of the import
// pipeline. The ingest service logs the underlying cause server-side and
// returns this sentinel so the response never leaks operational detail.
// Handlers should map this to HTTP 500.
var ErrIngestFailed = errors.New("failed to process CSV file")
