package sqlite

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// List-valued columns hold JSON arrays. Decoding never fails a read: a
// malformed blob yields an empty list and a warning.

func encodeList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(data), nil
}

func decodeList[T any](logger *zap.Logger, raw, id, column string) []T {
	out := []T{}
	if raw == "" {
		return out
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logger.Warn("malformed list column, using empty list",
			zap.String("id", id),
			zap.String("column", column),
			zap.Error(err))
		return []T{}
	}
	return out
}

func (b *Backend) decodeStrings(raw, id, column string) []string {
	return decodeList[string](b.logger, raw, id, column)
}

func (b *Backend) decodeExamples(raw, id string) []types.Example {
	return decodeList[types.Example](b.logger, raw, id, "examples")
}
