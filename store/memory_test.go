package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`[{"id":"a"}]`)
	require.NoError(t, s.Put(ctx, "k", payload))

	// caller mutations must not leak into the store
	payload[0] = 'X'

	got, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	_, found, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeysFor(t *testing.T) {
	k := KeysFor("oneearth")
	assert.Equal(t, "oneearth-users", k.Users)
	assert.Equal(t, "oneearth-challenges", k.Challenges)
	assert.Equal(t, "oneearth-completions", k.Completions)
	assert.Equal(t, "oneearth-rewards", k.Rewards)
	assert.Equal(t, "oneearth-current-user", k.Session)
	assert.Len(t, k.Collections(), 4)
}
