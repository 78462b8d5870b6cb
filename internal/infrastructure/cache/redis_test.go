package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	r := NewRedisWithClient(client, "jobportal:", nil)
	t.Cleanup(func() { _ = r.Close() })
	return r, mr
}

func TestRedis_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t)

	_, ok, err := r.Get(ctx, "jobSeekers")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Set(ctx, "jobSeekers", []byte(`[]`)))
	assert.True(t, mr.Exists("jobportal:jobSeekers"))
	assert.Zero(t, mr.TTL("jobportal:jobSeekers"))

	b, ok, err := r.Get(ctx, "jobSeekers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(b))

	require.NoError(t, r.Remove(ctx, "jobSeekers"))
	assert.False(t, mr.Exists("jobportal:jobSeekers"))
}

func TestRedis_NilIsUnavailable(t *testing.T) {
	var r *Redis
	_, _, err := r.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, r.Close())
}
