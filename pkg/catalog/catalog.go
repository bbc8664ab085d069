// Package catalog is the query engine UI code talks to. It sits on top of a
// types.Store and turns every store outcome into a types.Result, so callers
// branch on a status instead of inspecting errors. Store failures are logged
// here and never escape as panics.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/formulary/internal/logging"
	"github.com/mesh-intelligence/formulary/internal/search"
	"github.com/mesh-intelligence/formulary/internal/sqlite"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// Catalog answers formula queries and records user activity.
type Catalog struct {
	store        types.Store
	logger       *zap.Logger
	historyLimit int
}

type options struct {
	logger *zap.Logger
	store  types.Store
	now    func() time.Time
}

// Option configures Open and New.
type Option func(*options)

// WithLogger sets the logger for store failures. Nil discards.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source for recorded timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStore makes Open attach store instead of a new SQLite backend.
func WithStore(s types.Store) Option {
	return func(o *options) { o.store = s }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.OrNop(o.logger)
	return o
}

// Open attaches a store for cfg, seeding it on first use, and returns a
// Catalog over it. Call Close when done.
func Open(ctx context.Context, cfg types.Config, opts ...Option) (*Catalog, error) {
	o := buildOptions(opts)
	store := o.store
	if store == nil {
		store = sqlite.NewBackend(sqlite.WithLogger(o.logger), sqlite.WithClock(o.now))
	}
	if err := store.Attach(ctx, cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	c := New(store, opts...)
	c.historyLimit = cfg.GetHistoryLimit()
	return c, nil
}

// New wraps an already attached store.
func New(store types.Store, opts ...Option) *Catalog {
	o := buildOptions(opts)
	return &Catalog{
		store:        store,
		logger:       o.logger,
		historyLimit: types.DefaultHistoryLimit,
	}
}

// Close detaches the underlying store.
func (c *Catalog) Close() error {
	return c.store.Detach()
}

// finish converts a store outcome into a Result, logging failures.
func finish[T any](c *Catalog, op string, v T, err error, fields ...zap.Field) types.Result[T] {
	r := types.From(v, err)
	switch r.Status {
	case types.StatusError:
		c.logger.Error("catalog query failed",
			append(fields, zap.String("op", op), zap.Error(err))...)
	case types.StatusNotFound:
		c.logger.Debug("catalog entry not found", append(fields, zap.String("op", op))...)
	}
	return r
}

// List returns the formulas matching filter ordered by name.
func (c *Catalog) List(ctx context.Context, filter types.FormulaFilter) types.Result[[]types.Formula] {
	if filter.MaxDifficulty != "" && !filter.MaxDifficulty.Valid() {
		return finish[[]types.Formula](c, "list", nil,
			fmt.Errorf("%w: %q", types.ErrInvalidDifficulty, filter.MaxDifficulty))
	}
	v, err := c.store.ListFormulas(ctx, filter)
	return finish(c, "list", v, err,
		zap.String("category", filter.Category),
		zap.String("subcategory", filter.Subcategory),
		zap.String("difficulty", string(filter.MaxDifficulty)))
}

// ListAll returns every formula ordered by name.
func (c *Catalog) ListAll(ctx context.Context) types.Result[[]types.Formula] {
	v, err := c.store.ListFormulas(ctx, types.FormulaFilter{})
	return finish(c, "list_all", v, err)
}

// ListByCategory returns the formulas of a category ordered by name. An
// unknown category yields an empty list, not NotFound.
func (c *Catalog) ListByCategory(ctx context.Context, category string) types.Result[[]types.Formula] {
	v, err := c.store.ListFormulas(ctx, types.FormulaFilter{Category: category})
	return finish(c, "list_by_category", v, err, zap.String("category", category))
}

// ListBySubcategory returns the formulas of one subcategory of a category.
func (c *Catalog) ListBySubcategory(ctx context.Context, category, subcategory string) types.Result[[]types.Formula] {
	return c.List(ctx, types.FormulaFilter{Category: category, Subcategory: subcategory})
}

// ListByDifficulty returns the formulas at or below level.
func (c *Catalog) ListByDifficulty(ctx context.Context, level types.Difficulty) types.Result[[]types.Formula] {
	if !level.Valid() {
		return finish[[]types.Formula](c, "list_by_difficulty", nil,
			fmt.Errorf("%w: %q", types.ErrInvalidDifficulty, level))
	}
	return c.List(ctx, types.FormulaFilter{MaxDifficulty: level})
}

// GetByID returns one formula and records the view in the recent list. A
// failure to record is logged and does not hide the formula.
func (c *Catalog) GetByID(ctx context.Context, id string) types.Result[types.Formula] {
	if strings.TrimSpace(id) == "" {
		return types.NotFound[types.Formula]()
	}
	if err := c.store.RecordView(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return finish(c, "get_by_id", types.Formula{}, err, zap.String("id", id))
		}
		c.logger.Warn("recording recent view failed", zap.String("id", id), zap.Error(err))
	}
	v, err := c.store.GetFormula(ctx, id)
	return finish(c, "get_by_id", v, err, zap.String("id", id))
}

// Peek returns one formula without touching the recent list.
func (c *Catalog) Peek(ctx context.Context, id string) types.Result[types.Formula] {
	if strings.TrimSpace(id) == "" {
		return types.NotFound[types.Formula]()
	}
	v, err := c.store.GetFormula(ctx, id)
	return finish(c, "peek", v, err, zap.String("id", id))
}

// Search ranks the catalog against query and returns at most search.Limit
// hits. A blank query returns an empty list without reading the store.
// Non-blank queries are appended to the search history.
func (c *Catalog) Search(ctx context.Context, query string) types.Result[[]search.Hit] {
	if search.Blank(query) {
		return types.OK([]search.Hit{})
	}
	all, err := c.store.ListFormulas(ctx, types.FormulaFilter{})
	if err != nil {
		return finish[[]search.Hit](c, "search", nil, err, zap.String("query", query))
	}
	hits := search.Rank(all, query)
	if hits == nil {
		hits = []search.Hit{}
	}
	if err := c.store.AddSearchQuery(ctx, query); err != nil {
		c.logger.Warn("recording search query failed", zap.String("query", query), zap.Error(err))
	}
	return types.OK(hits)
}

// ListFavorites returns favorite formulas, most recently added first.
func (c *Catalog) ListFavorites(ctx context.Context) types.Result[[]types.Formula] {
	v, err := c.store.ListFavorites(ctx)
	return finish(c, "list_favorites", v, err)
}

// ToggleFavorite flips the favorite state of id and returns the new state.
func (c *Catalog) ToggleFavorite(ctx context.Context, id string) types.Result[bool] {
	if strings.TrimSpace(id) == "" {
		return types.NotFound[bool]()
	}
	v, err := c.store.ToggleFavorite(ctx, id)
	return finish(c, "toggle_favorite", v, err, zap.String("id", id))
}

// AddFavorite marks id as a favorite. Adding an existing favorite is a no-op.
func (c *Catalog) AddFavorite(ctx context.Context, id string) types.Result[struct{}] {
	if strings.TrimSpace(id) == "" {
		return types.NotFound[struct{}]()
	}
	err := c.store.AddFavorite(ctx, id)
	return finish(c, "add_favorite", struct{}{}, err, zap.String("id", id))
}

// RemoveFavorite unmarks id. Removing a non-favorite is a no-op.
func (c *Catalog) RemoveFavorite(ctx context.Context, id string) types.Result[struct{}] {
	if strings.TrimSpace(id) == "" {
		return types.NotFound[struct{}]()
	}
	err := c.store.RemoveFavorite(ctx, id)
	return finish(c, "remove_favorite", struct{}{}, err, zap.String("id", id))
}

// IsFavorite reports whether id is a favorite.
func (c *Catalog) IsFavorite(ctx context.Context, id string) types.Result[bool] {
	v, err := c.store.IsFavorite(ctx, id)
	return finish(c, "is_favorite", v, err, zap.String("id", id))
}

// ListRecent returns recently viewed formulas, most recent first.
func (c *Catalog) ListRecent(ctx context.Context) types.Result[[]types.RecentFormula] {
	v, err := c.store.ListRecent(ctx)
	return finish(c, "list_recent", v, err)
}

// GetCategories returns the distinct category ids used by formulas, sorted.
func (c *Catalog) GetCategories(ctx context.Context) types.Result[[]string] {
	v, err := c.store.DistinctCategories(ctx)
	return finish(c, "get_categories", v, err)
}

// GetDifficultyLevels returns the difficulties present, easiest first.
func (c *Catalog) GetDifficultyLevels(ctx context.Context) types.Result[[]types.Difficulty] {
	v, err := c.store.DistinctDifficulties(ctx)
	return finish(c, "get_difficulty_levels", v, err)
}

// Subcategories returns the subcategories used by a category's formulas.
func (c *Catalog) Subcategories(ctx context.Context, category string) types.Result[[]string] {
	v, err := c.store.Subcategories(ctx, category)
	return finish(c, "subcategories", v, err, zap.String("category", category))
}

// Categories returns category display metadata in catalog order.
func (c *Catalog) Categories(ctx context.Context) types.Result[[]types.Category] {
	v, err := c.store.ListCategories(ctx)
	return finish(c, "categories", v, err)
}

// SearchHistory returns recent distinct queries, newest first.
func (c *Catalog) SearchHistory(ctx context.Context) types.Result[[]types.SearchEntry] {
	v, err := c.store.SearchHistory(ctx, c.historyLimit)
	return finish(c, "search_history", v, err)
}

// ClearSearchHistory forgets every logged query.
func (c *Catalog) ClearSearchHistory(ctx context.Context) types.Result[struct{}] {
	err := c.store.ClearSearchHistory(ctx)
	return finish(c, "clear_search_history", struct{}{}, err)
}

// Preference returns the value stored under key, or NotFound.
func (c *Catalog) Preference(ctx context.Context, key string) types.Result[string] {
	v, err := c.store.GetPreference(ctx, key)
	return finish(c, "preference", v, err, zap.String("key", key))
}

// SetPreference stores value under key.
func (c *Catalog) SetPreference(ctx context.Context, key, value string) types.Result[struct{}] {
	err := c.store.SetPreference(ctx, key, value)
	return finish(c, "set_preference", struct{}{}, err, zap.String("key", key))
}

// DeletePreference removes key. Deleting an unset key succeeds.
func (c *Catalog) DeletePreference(ctx context.Context, key string) types.Result[struct{}] {
	err := c.store.DeletePreference(ctx, key)
	return finish(c, "delete_preference", struct{}{}, err, zap.String("key", key))
}

// Preferences returns every stored preference ordered by key.
func (c *Catalog) Preferences(ctx context.Context) types.Result[[]types.Preference] {
	v, err := c.store.ListPreferences(ctx)
	return finish(c, "preferences", v, err)
}
