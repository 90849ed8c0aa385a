package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a row does not exist. Handlers surface
	// it identically for missing and non-owned resources.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when an insert hits a primary-key
	// conflict. Callers regenerate the id and retry.
	ErrDuplicateID = errors.New("duplicate id")
)

// uniqueViolation is the postgres error code for unique-constraint conflicts.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
