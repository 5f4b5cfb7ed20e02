// Package common defines shared constants and sentinel errors used across
// the storage, store and view layers of empdir. Callers should use errors.Is
// and errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Input errors (bad per-page value, unknown enum value and so on).
	ErrorInvalidInput = errors.New("invalid input")

	// Sealed storage could not open a value with the configured passphrase.
	ErrorSealBroken = errors.New("stored value cannot be opened with this passphrase")

	// The storage is sealed but no passphrase was given.
	ErrorSealRequired = errors.New("storage is sealed: a passphrase is required")
)

// PersistenceError reports a durable-storage failure. In-memory state is
// still correct when it is returned; only durability is at risk.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err carries a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
