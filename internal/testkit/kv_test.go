package testkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_FailsOnlyMatchingPrefix(t *testing.T) {
	backend, _ := NewRedis(t)
	rec := NewRecorder(backend)
	rec.FailSet = "game:"
	ctx := context.Background()

	assert.ErrorIs(t, rec.Set(ctx, "game:1", "{}"), ErrInjected)
	require.NoError(t, rec.Set(ctx, "user:1", "{}"))
	require.NoError(t, rec.Set(ctx, "ga", "{}"))
	assert.Equal(t, []string{"user:1", "ga"}, rec.Writes())
}

func TestRecorder_EmptyPrefixNeverFails(t *testing.T) {
	backend, _ := NewRedis(t)
	rec := NewRecorder(backend)

	require.NoError(t, rec.Set(context.Background(), "user:1", "{}"))
	_, found, err := rec.Get(context.Background(), "user:1")
	require.NoError(t, err)
	assert.True(t, found)
}
