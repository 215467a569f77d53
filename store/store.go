// Package store persists JSON-encoded collections in named key-value slots.
package store

import (
	"context"
	"fmt"
)

// Store is a flat key-value space. A missing key is reported with found=false, never as an error.
type Store interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Keys names the five fixed slots the application uses.
type Keys struct {
	Users       string
	Challenges  string
	Completions string
	Rewards     string
	Session     string
}

// KeysFor derives the slot names from a prefix, e.g. "oneearth" -> "oneearth-users".
func KeysFor(prefix string) Keys {
	return Keys{
		Users:       fmt.Sprintf("%s-users", prefix),
		Challenges:  fmt.Sprintf("%s-challenges", prefix),
		Completions: fmt.Sprintf("%s-completions", prefix),
		Rewards:     fmt.Sprintf("%s-rewards", prefix),
		Session:     fmt.Sprintf("%s-current-user", prefix),
	}
}

// Collections lists the record collection keys, excluding the session.
func (k Keys) Collections() []string {
	return []string{k.Users, k.Challenges, k.Completions, k.Rewards}
}
