// Package sqlite provides the public API for the SQLite catalog store.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/formulary/internal/sqlite"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// DatabaseFile is the name of the database created inside the data dir.
const DatabaseFile = sqlite.DatabaseFile

// NewBackend creates a new SQLite backend instance that logs to logger
// (nil discards). The backend is not attached; call Attach with a Config to
// initialize.
//
// Example:
//
//	store := sqlite.NewBackend(nil)
//	err := store.Attach(ctx, types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer store.Detach()
func NewBackend(logger *zap.Logger) types.Store {
	return sqlite.NewBackend(sqlite.WithLogger(logger))
}
