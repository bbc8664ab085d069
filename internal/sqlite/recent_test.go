package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

func recentIDs(recent []types.RecentFormula) []string {
	out := make([]string, len(recent))
	for i, r := range recent {
		out[i] = r.Formula.ID
	}
	return out
}

func TestRecordView_MostRecentFirst(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	for _, id := range []string{"slope-formula", "chain-rule", "mean-formula"} {
		require.NoError(t, b.RecordView(ctx, id))
	}
	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"mean-formula", "chain-rule", "slope-formula"}, recentIDs(recent))
	assert.True(t, recent[0].ViewedAt.After(recent[1].ViewedAt))
}

func TestRecordView_Deduplicates(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	for _, id := range []string{"slope-formula", "chain-rule", "slope-formula"} {
		require.NoError(t, b.RecordView(ctx, id))
	}
	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"slope-formula", "chain-rule"}, recentIDs(recent))
}

func TestRecordView_UpdatesLastViewed(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	require.NoError(t, b.RecordView(ctx, "area-circle"))
	f, err := b.GetFormula(ctx, "area-circle")
	require.NoError(t, err)
	require.NotNil(t, f.LastViewed)

	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, f.LastViewed.Equal(recent[0].ViewedAt))
}

func TestRecordView_UnknownID(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	assert.ErrorIs(t, b.RecordView(ctx, "nonexistent"), types.ErrNotFound)
	assert.ErrorIs(t, b.RecordView(ctx, ""), types.ErrInvalidID)

	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRecordView_CapEvictsOldest(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.RecentLimit = 3
	b := setupBackendWithConfig(t, cfg)
	ctx := context.Background()

	views := []string{"slope-formula", "chain-rule", "mean-formula", "area-circle", "sine-law"}
	for _, id := range views {
		require.NoError(t, b.RecordView(ctx, id))
	}
	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sine-law", "area-circle", "mean-formula"}, recentIDs(recent))

	var rows int
	require.NoError(t, b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recent").Scan(&rows))
	assert.Equal(t, 3, rows, "evicted rows are deleted, not just hidden")
}

func TestRecordView_DefaultCap(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	all, err := b.ListFormulas(ctx, types.FormulaFilter{})
	require.NoError(t, err)
	require.Greater(t, len(all), types.DefaultRecentLimit)

	for _, f := range all {
		require.NoError(t, b.RecordView(ctx, f.ID))
	}
	recent, err := b.ListRecent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, types.DefaultRecentLimit)
	assert.Equal(t, all[len(all)-1].ID, recent[0].Formula.ID)

	seen := map[string]bool{}
	for _, r := range recent {
		assert.False(t, seen[r.Formula.ID], fmt.Sprintf("duplicate %s", r.Formula.ID))
		seen[r.Formula.ID] = true
	}
}
