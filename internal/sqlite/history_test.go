package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

func queries(entries []types.SearchEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Query
	}
	return out
}

func TestSearchHistory_NewestFirstDeduplicated(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	for _, q := range []string{"circle", "quadratic", "circle", "  ", "sine"} {
		require.NoError(t, b.AddSearchQuery(ctx, q))
	}
	got, err := b.SearchHistory(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"sine", "circle", "quadratic"}, queries(got))

	for _, e := range got {
		id, err := uuid.Parse(e.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestSearchHistory_Limit(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.HistoryLimit = 2
	b := setupBackendWithConfig(t, cfg)
	ctx := context.Background()

	for _, q := range []string{"a", "b", "c"} {
		require.NoError(t, b.AddSearchQuery(ctx, q))
	}
	got, err := b.SearchHistory(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, queries(got))

	got, err = b.SearchHistory(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, queries(got))
}

func TestClearSearchHistory(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	require.NoError(t, b.AddSearchQuery(ctx, "derivative"))
	require.NoError(t, b.ClearSearchHistory(ctx))

	got, err := b.SearchHistory(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, b.AddSearchQuery(ctx, "integral"))
	got, err = b.SearchHistory(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"integral"}, queries(got))
}
