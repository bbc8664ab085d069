// Package sqlite implements the persistent formula catalog on an embedded
// SQLite database. The catalog rows are seeded once from internal/seed; user
// state (favorites, recent views, search history, preferences) lives in the
// same file and survives restarts.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/formulary/internal/logging"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// DatabaseFile is the name of the SQLite file created inside the data dir.
const DatabaseFile = "formulary.db"

const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

var _ types.Store = (*Backend)(nil)

// Backend implements types.Store using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for decode warnings and seeding events.
func WithLogger(l *zap.Logger) Option {
	return func(b *Backend) { b.logger = logging.OrNop(l) }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Path returns the database file for a data directory.
func Path(dataDir string) string {
	if dataDir == "" {
		dataDir = "."
	}
	return filepath.Join(dataDir, DatabaseFile)
}

// dsn builds the SQLite URI for dbPath. The path is escaped so that '?', '#'
// and '%' in directory names stay part of the file name.
func dsn(dbPath string) string {
	u := url.URL{Scheme: "file", OmitHost: true, Path: filepath.ToSlash(dbPath), RawQuery: sqlitePragmas}
	return u.String()
}

// Attach opens the database under config.DataDir, creating the directory,
// the file and any missing tables. An empty catalog is seeded; an existing
// one is left as is. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(ctx context.Context, config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dbPath := Path(config.DataDir)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return err
	}

	seeded, err := bootstrap(ctx, db)
	if err != nil {
		db.Close()
		return fmt.Errorf("seed catalog: %w", err)
	}
	if seeded.formulas > 0 || seeded.categories > 0 {
		b.logger.Info("seeded catalog",
			zap.String("path", dbPath),
			zap.Int("formulas", seeded.formulas),
			zap.Int("categories", seeded.categories))
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. After Detach, all operations return
// ErrNotInitialized. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	db := b.db
	b.db = nil
	if db != nil {
		if err := db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}

// readLock takes the read lock and reports ErrNotInitialized when detached.
// On success the caller must call b.mu.RUnlock.
func (b *Backend) readLock() error {
	b.mu.RLock()
	if !b.attached {
		b.mu.RUnlock()
		return types.ErrNotInitialized
	}
	return nil
}

// writeLock is readLock for mutations.
func (b *Backend) writeLock() error {
	b.mu.Lock()
	if !b.attached {
		b.mu.Unlock()
		return types.ErrNotInitialized
	}
	return nil
}

// withTx runs fn in a transaction, committing when fn returns nil.
func (b *Backend) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (b *Backend) timestamp() string {
	return formatTime(b.now())
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
