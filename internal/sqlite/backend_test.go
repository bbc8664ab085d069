package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/formulary/internal/seed"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// stepClock returns a strictly increasing time on every call.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func testConfig(dir string) types.Config {
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: dir,
	}
}

// setupBackend attaches a Backend to a fresh temp dir and detaches it when the
// test ends.
func setupBackend(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	return setupBackendWithConfig(t, testConfig(t.TempDir()), opts...)
}

func setupBackendWithConfig(t *testing.T, cfg types.Config, opts ...Option) *Backend {
	t.Helper()
	opts = append([]Option{WithClock(newStepClock().Now)}, opts...)
	b := NewBackend(opts...)
	require.NoError(t, b.Attach(context.Background(), cfg))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := NewBackend()
	ctx := context.Background()

	require.NoError(t, b.Attach(ctx, testConfig(dir)))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(dir, DatabaseFile))
	require.NoError(t, err, "database file should be created")

	assert.ErrorIs(t, b.Attach(ctx, testConfig(dir)), types.ErrAlreadyAttached)
}

func TestBackend_AttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(context.Background(), types.Config{DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	err = b.Attach(context.Background(), types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	ctx := context.Background()
	require.NoError(t, b.Attach(ctx, testConfig(t.TempDir())))

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "second Detach should be a no-op")

	_, err := b.ListFormulas(ctx, types.FormulaFilter{})
	assert.ErrorIs(t, err, types.ErrNotInitialized)
	_, err = b.GetFormula(ctx, "quadratic-formula")
	assert.ErrorIs(t, err, types.ErrNotInitialized)
	_, err = b.ToggleFavorite(ctx, "quadratic-formula")
	assert.ErrorIs(t, err, types.ErrNotInitialized)
	assert.ErrorIs(t, b.RecordView(ctx, "quadratic-formula"), types.ErrNotInitialized)
	_, err = b.ListRecent(ctx)
	assert.ErrorIs(t, err, types.ErrNotInitialized)
	assert.ErrorIs(t, b.AddSearchQuery(ctx, "x"), types.ErrNotInitialized)
	_, err = b.GetPreference(ctx, "theme")
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestBackend_NeverAttached(t *testing.T) {
	b := NewBackend()
	_, err := b.ListCategories(context.Background())
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestBackend_SeedsEmptyStore(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	formulas, err := b.ListFormulas(ctx, types.FormulaFilter{})
	require.NoError(t, err)
	assert.Len(t, formulas, len(seed.Formulas()))

	categories, err := b.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Categories(), categories)
}

func TestBackend_StoredFormulaMatchesSeed(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	for _, want := range seed.Formulas() {
		got, err := b.GetFormula(ctx, want.ID)
		require.NoError(t, err, want.ID)
		assert.Equal(t, want, got, want.ID)
	}
}

func TestBackend_ReattachPreservesUserState(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	b := NewBackend()
	require.NoError(t, b.Attach(ctx, testConfig(dir)))
	_, err := b.ToggleFavorite(ctx, "quadratic-formula")
	require.NoError(t, err)
	require.NoError(t, b.RecordView(ctx, "chain-rule"))
	require.NoError(t, b.SetPreference(ctx, "theme", "dark"))
	require.NoError(t, b.Detach())

	for i := 0; i < 2; i++ {
		b = NewBackend()
		require.NoError(t, b.Attach(ctx, testConfig(dir)))

		formulas, err := b.ListFormulas(ctx, types.FormulaFilter{})
		require.NoError(t, err)
		assert.Len(t, formulas, len(seed.Formulas()), "reseeding must not duplicate rows")

		fav, err := b.IsFavorite(ctx, "quadratic-formula")
		require.NoError(t, err)
		assert.True(t, fav)

		recent, err := b.ListRecent(ctx)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, "chain-rule", recent[0].Formula.ID)

		theme, err := b.GetPreference(ctx, "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", theme)

		require.NoError(t, b.Detach())
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	counts, err := bootstrap(ctx, b.db)
	require.NoError(t, err)
	assert.Equal(t, seedCounts{}, counts, "populated tables are not reseeded")

	var n int
	require.NoError(t, b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM formulas").Scan(&n))
	assert.Equal(t, len(seed.Formulas()), n)
	require.NoError(t, b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&n))
	assert.Equal(t, len(seed.Categories()), n)
}

func TestBackend_WithLoggerNil(t *testing.T) {
	b := NewBackend(WithLogger(nil))
	require.NotNil(t, b.logger)
	b = NewBackend(WithLogger(zap.NewExample()))
	require.NotNil(t, b.logger)
}

func TestBackend_AttachDataDirSpecialChars(t *testing.T) {
	tests := []struct {
		name string
		dir  string
	}{
		{name: "space", dir: "with space"},
		{name: "hash", dir: "hash#dir"},
		{name: "question mark", dir: "q?mark"},
		{name: "percent", dir: "pct%20dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := t.TempDir()
			dataDir := filepath.Join(parent, tt.dir)
			b := setupBackendWithConfig(t, testConfig(dataDir))

			assert.FileExists(t, Path(dataDir))
			entries, err := os.ReadDir(parent)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.dir, entries[0].Name())

			all, err := b.ListFormulas(context.Background(), types.FormulaFilter{})
			require.NoError(t, err)
			assert.Len(t, all, len(seed.Formulas()))
		})
	}
}

func TestDSN(t *testing.T) {
	assert.Equal(t,
		"file:/data/a%23b/c%3Fd/e%25f%20g/"+DatabaseFile+"?"+sqlitePragmas,
		dsn("/data/a#b/c?d/e%f g/"+DatabaseFile))
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".", DatabaseFile), Path(""))
	assert.Equal(t, filepath.Join("/var/lib/formulary", DatabaseFile), Path("/var/lib/formulary"))
}
