package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Typed errors raised by the service layer. Controllers translate these
// into HTTP statuses instead of leaking storage errors to clients.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrLocked     = errors.New("match has started or finished")
	ErrDuplicate  = errors.New("resource already exists")
	ErrNotReady   = errors.New("match is not finished yet")
	ErrValidation = errors.New("invalid input")
	ErrIntegrity  = errors.New("storage constraint violated")
)

// translateDBError classifies a storage error into the service taxonomy.
// Unique-constraint violations become ErrDuplicate so that concurrent
// writers racing on the same key see the same error as a pre-checked
// duplicate; anything else surfaces as ErrIntegrity with the original
// message preserved for the logs.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}

	// Postgres reports 23505, sqlite says "UNIQUE constraint failed".
	msg := err.Error()
	if strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") {
		return ErrDuplicate
	}

	return ErrIntegrity
}
