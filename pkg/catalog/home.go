package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// Home is everything the landing screen shows.
type Home struct {
	Categories []types.Category      `json:"categories"`
	Favorites  []types.Formula       `json:"favorites"`
	Recent     []types.RecentFormula `json:"recent"`
}

// Home loads categories, favorites and recent views concurrently. Any
// failure fails the whole result.
func (c *Catalog) Home(ctx context.Context) types.Result[Home] {
	var h Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := c.store.ListCategories(gctx)
		h.Categories = v
		return err
	})
	g.Go(func() error {
		v, err := c.store.ListFavorites(gctx)
		h.Favorites = v
		return err
	})
	g.Go(func() error {
		v, err := c.store.ListRecent(gctx)
		h.Recent = v
		return err
	})
	err := g.Wait()
	return finish(c, "home", h, err)
}
