package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound means the requested record does not exist
	ErrNotFound = errors.New("repository: record not found")
	// ErrIntegrity means an insert or update violated a database constraint,
	// typically a comment referencing a nonexistent house
	ErrIntegrity = errors.New("repository: constraint violation")
)

// translate maps driver-level errors onto the repository sentinels so callers
// can rely on errors.Is instead of inspecting pq internals.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 23 — integrity constraint violation
		if pqErr.Code.Class() == "23" {
			return errors.Join(ErrIntegrity, err)
		}
	}
	return err
}
