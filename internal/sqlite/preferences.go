package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// GetPreference returns the stored value for key.
func (b *Backend) GetPreference(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", types.ErrInvalidKey
	}
	if err := b.readLock(); err != nil {
		return "", err
	}
	defer b.mu.RUnlock()

	var value string
	err := b.db.QueryRowContext(ctx, "SELECT value FROM user_preferences WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("get preference %s: %w", key, err)
	}
	return value, nil
}

// SetPreference stores value under key, replacing any previous value.
func (b *Backend) SetPreference(ctx context.Context, key, value string) error {
	if key == "" {
		return types.ErrInvalidKey
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	_, err := b.db.ExecContext(ctx,
		`INSERT INTO user_preferences (key, value) VALUES (?, ?)
    ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("set preference %s: %w", key, err)
	}
	return nil
}

// DeletePreference removes key. Deleting an unset key is a no-op.
func (b *Backend) DeletePreference(ctx context.Context, key string) error {
	if key == "" {
		return types.ErrInvalidKey
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if _, err := b.db.ExecContext(ctx, "DELETE FROM user_preferences WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete preference %s: %w", key, err)
	}
	return nil
}

// ListPreferences returns every stored preference ordered by key.
func (b *Backend) ListPreferences(ctx context.Context) ([]types.Preference, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	rows, err := b.db.QueryContext(ctx, "SELECT key, value FROM user_preferences ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	out := []types.Preference{}
	for rows.Next() {
		var p types.Preference
		if err := rows.Scan(&p.Key, &p.Value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	return out, nil
}
