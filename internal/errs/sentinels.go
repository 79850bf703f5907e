// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Sentinels produced by the REST layer and inspected (or collapsed into a
// generic user-facing failure) by the managers.
var (
	// ErrUnauthorized indicates rejected credentials or a missing session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrBadResponse indicates an unexpected status or an undecodable body.
	ErrBadResponse = errors.New("bad response")
)
