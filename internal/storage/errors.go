// Package storage holds sentinels shared by every store implementation so
// in-memory and Mongo-backed stores fail identically.
package storage

import dErrors "motorvault/pkg/domain-errors"

var (
	// ErrNotFound keeps storage-specific 404s consistent across in-memory
	// and Mongo implementations. A record owned by someone else is reported
	// with this same error so existence never leaks.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "record not found")

	// ErrDuplicate surfaces a uniqueness-constraint violation at insert
	// time. Services map it to a Conflict for the caller.
	ErrDuplicate = dErrors.New(dErrors.CodeConflict, "record already exists")
)
