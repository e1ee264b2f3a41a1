package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type entry struct {
		ID string `json:"id"`
	}

	require.NoError(t, c.Set(ctx, "models:text-to-image", []entry{{ID: "fal-ai/flux-1/schnell"}}, time.Minute))

	var got []entry
	require.NoError(t, c.Get(ctx, "models:text-to-image", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "fal-ai/flux-1/schnell", got[0].ID)
}

func TestMemoryCache_MissAndExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "absent", &dest), ErrMiss)

	require.NoError(t, c.Set(ctx, "ephemeral", "v", -time.Second))
	assert.ErrorIs(t, c.Get(ctx, "ephemeral", &dest), ErrMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var dest string
	assert.ErrorIs(t, c.Get(ctx, "k", &dest), ErrMiss)
}
