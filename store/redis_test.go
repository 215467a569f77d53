package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer client.Close()

	s := NewRedisStore(client, "oneearth-test-"+uuid.NewString())

	_, found, err := s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Put(ctx, "slot", []byte(`{"id":"a"}`)))
	data, found, err := s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"id":"a"}`, string(data))

	require.NoError(t, s.Delete(ctx, "slot"))
	_, found, err = s.Get(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, found)
}
