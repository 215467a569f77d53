package store

import "github.com/google/uuid"

// IDFunc produces identifiers for new records.
type IDFunc func() string

// NewID is the default generator: random UUIDs.
func NewID() string {
	return uuid.NewString()
}
