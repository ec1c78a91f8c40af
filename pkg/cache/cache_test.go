package cache_test

import (
	"context"
	"testing"
	"time"

	"careerguide/pkg/cache"

	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c cache.Cache = cache.Nop{}

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)

	var out map[string]int
	found, err = cache.GetJSON(ctx, c, "k", &out)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, out)
}
