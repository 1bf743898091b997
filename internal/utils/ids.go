package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for newly created entities. Injected so
// tests can pin deterministic ids.
type IDGenerator func() string

// NewIDGenerator returns the production generator backed by random UUIDs.
func NewIDGenerator() IDGenerator {
	return uuid.NewString
}
