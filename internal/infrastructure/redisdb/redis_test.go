package redisdb

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	r := New(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { r.Close() })
	return r, mr
}

func TestRedis_SetGet(t *testing.T) {
	r, mr := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user:1", `{"user_id":"1"}`))
	mr.CheckGet(t, "user:1", `{"user_id":"1"}`)

	value, found, err := r.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"user_id":"1"}`, value)
}

func TestRedis_GetMissingIsNotAnError(t *testing.T) {
	r, _ := setupRedis(t)

	value, found, err := r.Get(context.Background(), "game:nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestRedis_KeysExistsDel(t *testing.T) {
	r, _ := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "user:a", "1"))
	require.NoError(t, r.Set(ctx, "user:b", "2"))
	require.NoError(t, r.Set(ctx, "game:c", "3"))

	keys, err := r.Keys(ctx, "user:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user:a", "user:b"}, keys)

	exists, err := r.Exists(ctx, "game:c")
	require.NoError(t, err)
	assert.True(t, exists)

	n, err := r.Del(ctx, "game:c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	exists, err = r.Exists(ctx, "game:c")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedis_Connect(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := Connect(context.Background(), "redis://"+mr.Addr(), nil)
	require.NoError(t, err)
	defer r.Close()
	assert.NoError(t, r.Ping(context.Background()))
}

func TestRedis_ConnectFailsWhenDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), "redis://"+addr, nil)
	assert.Error(t, err)
}

func TestRedis_BackendErrorsSurface(t *testing.T) {
	r, mr := setupRedis(t)
	mr.SetError("LOADING")

	err := r.Set(context.Background(), "user:x", "1")
	assert.Error(t, err)
	_, _, err = r.Get(context.Background(), "user:x")
	assert.Error(t, err)
}

func TestRedis_ConnectSingleAddrOverridesURL(t *testing.T) {
	mr := miniredis.RunT(t)

	r, err := Connect(context.Background(), "redis://127.0.0.1:1", []string{mr.Addr()})
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(context.Background(), "user:a", "1"))
	mr.CheckGet(t, "user:a", "1")
}
