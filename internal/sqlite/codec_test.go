package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

func TestEncodeList_NilIsEmptyArray(t *testing.T) {
	got, err := encodeList[string](nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestDecodeList(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	assert.Equal(t, []string{"a", "b"}, decodeList[string](logger, `["a","b"]`, "x", "tags"))
	assert.Equal(t, []string{}, decodeList[string](logger, "", "x", "tags"))
	assert.Equal(t, 0, logs.Len())

	assert.Equal(t, []string{}, decodeList[string](logger, "{not json", "x", "tags"))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "malformed list column, using empty list", entry.Message)
	assert.Equal(t, "tags", entry.ContextMap()["column"])
}

func TestMalformedBlobFailsClosed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	b := setupBackend(t, WithLogger(zap.New(core)))
	ctx := context.Background()

	_, err := b.db.ExecContext(ctx,
		"UPDATE formulas SET tags = 'not json', examples = '[{' WHERE id = ?", "pythagorean-theorem")
	require.NoError(t, err)

	f, err := b.GetFormula(ctx, "pythagorean-theorem")
	require.NoError(t, err)
	assert.Empty(t, f.Tags)
	assert.Empty(t, f.Examples)
	assert.NotEmpty(t, f.Tips, "intact columns still decode")

	warnings := logs.FilterMessage("malformed list column, using empty list").All()
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		assert.Equal(t, "pythagorean-theorem", w.ContextMap()["id"])
	}

	all, err := b.ListFormulas(ctx, types.FormulaFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 22)
}
