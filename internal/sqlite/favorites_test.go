package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

func TestToggleFavorite(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	on, err := b.ToggleFavorite(ctx, "quadratic-formula")
	require.NoError(t, err)
	assert.True(t, on)

	f, err := b.GetFormula(ctx, "quadratic-formula")
	require.NoError(t, err)
	assert.True(t, f.IsFavorite)

	favs, err := b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"quadratic-formula"}, ids(favs))

	on, err = b.ToggleFavorite(ctx, "quadratic-formula")
	require.NoError(t, err)
	assert.False(t, on)

	f, err = b.GetFormula(ctx, "quadratic-formula")
	require.NoError(t, err)
	assert.False(t, f.IsFavorite)

	favs, err = b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestToggleFavorite_UnknownID(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	_, err := b.ToggleFavorite(ctx, "nonexistent")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = b.ToggleFavorite(ctx, "")
	assert.ErrorIs(t, err, types.ErrInvalidID)

	favs, err := b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestListFavorites_NewestFirst(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	for _, id := range []string{"slope-formula", "chain-rule", "kinetic-energy"} {
		_, err := b.ToggleFavorite(ctx, id)
		require.NoError(t, err)
	}
	favs, err := b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kinetic-energy", "chain-rule", "slope-formula"}, ids(favs))
	for _, f := range favs {
		assert.True(t, f.IsFavorite)
	}
}

func TestAddRemoveFavorite_Idempotent(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	require.NoError(t, b.AddFavorite(ctx, "area-circle"))
	require.NoError(t, b.AddFavorite(ctx, "area-circle"))
	favs, err := b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, 1)

	require.NoError(t, b.RemoveFavorite(ctx, "area-circle"))
	require.NoError(t, b.RemoveFavorite(ctx, "area-circle"))
	fav, err := b.IsFavorite(ctx, "area-circle")
	require.NoError(t, err)
	assert.False(t, fav)

	assert.ErrorIs(t, b.AddFavorite(ctx, "nonexistent"), types.ErrNotFound)
	assert.NoError(t, b.RemoveFavorite(ctx, "nonexistent"))
}

func TestToggleFavorite_ConcurrentTogglesNetOut(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	const toggles = 50
	var g errgroup.Group
	for i := 0; i < toggles; i++ {
		g.Go(func() error {
			_, err := b.ToggleFavorite(ctx, "chain-rule")
			return err
		})
	}
	require.NoError(t, g.Wait())

	fav, err := b.IsFavorite(ctx, "chain-rule")
	require.NoError(t, err)
	assert.False(t, fav, "an even number of toggles leaves the formula unfavorited")

	f, err := b.GetFormula(ctx, "chain-rule")
	require.NoError(t, err)
	assert.False(t, f.IsFavorite, "denormalized flag agrees with the favorites table")
}

func TestToggleFavorite_ConcurrentDistinctIDs(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	all, err := b.ListFormulas(ctx, types.FormulaFilter{})
	require.NoError(t, err)

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range all {
		id := f.ID
		g.Go(func() error {
			_, err := b.ToggleFavorite(gctx, id)
			return err
		})
	}
	require.NoError(t, g.Wait())

	favs, err := b.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Len(t, favs, len(all))
}
