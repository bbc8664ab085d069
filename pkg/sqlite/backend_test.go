package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

func TestNewBackend(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := NewBackend(nil)
	require.NoError(t, store.Attach(ctx, types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	defer store.Detach()

	_, err := os.Stat(filepath.Join(dir, DatabaseFile))
	require.NoError(t, err)

	f, err := store.GetFormula(ctx, "pythagorean-theorem")
	require.NoError(t, err)
	assert.Equal(t, "Pythagorean Theorem", f.Name)
}
