package types

import "context"

// Store is the persistent catalog: seeded formula rows plus the mutable
// favorite, recent, search history and preference state. Implementations
// serialize writers internally; callers never lock.
type Store interface {
	// Attach opens or creates the backing store described by config, creates
	// missing tables and seeds an empty catalog. Returns ErrAlreadyAttached
	// if called twice without Detach.
	Attach(ctx context.Context, config Config) error

	// Detach releases the store. Idempotent. Afterwards every operation
	// returns ErrNotInitialized.
	Detach() error

	ListFormulas(ctx context.Context, filter FormulaFilter) ([]Formula, error)
	// GetFormula returns ErrNotFound for an unknown id.
	GetFormula(ctx context.Context, id string) (Formula, error)

	// RecordView moves id to the front of the recent list, evicting entries
	// past the recent limit.
	RecordView(ctx context.Context, id string) error
	ListRecent(ctx context.Context) ([]RecentFormula, error)

	// ToggleFavorite flips the favorite state of id atomically and returns
	// the new state.
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	AddFavorite(ctx context.Context, id string) error
	RemoveFavorite(ctx context.Context, id string) error
	IsFavorite(ctx context.Context, id string) (bool, error)
	ListFavorites(ctx context.Context) ([]Formula, error)

	ListCategories(ctx context.Context) ([]Category, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctDifficulties(ctx context.Context) ([]Difficulty, error)
	Subcategories(ctx context.Context, category string) ([]string, error)

	AddSearchQuery(ctx context.Context, query string) error
	SearchHistory(ctx context.Context, limit int) ([]SearchEntry, error)
	ClearSearchHistory(ctx context.Context) error

	// GetPreference returns ErrNotFound for an unset key.
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
	DeletePreference(ctx context.Context, key string) error
	ListPreferences(ctx context.Context) ([]Preference, error)
}
