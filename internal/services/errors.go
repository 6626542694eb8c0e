package services

import "errors"

// Sentinel errors the handlers translate to HTTP statuses. Services wrap
// them with context via fmt.Errorf("%w: ...").
var (
	// ErrValidation: the request was well-formed JSON but semantically
	// wrong (duplicate email, closed job, unknown department, ...). -> 400
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized: the caller lacks permission for the requested
	// scope, including ownership failures. -> 401
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound: a directly addressed resource does not exist. Absent
	// filter referents in search are empty results, never ErrNotFound. -> 404
	ErrNotFound = errors.New("not found")
)
