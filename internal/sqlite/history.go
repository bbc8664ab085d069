package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// The search log is append-only. Reads collapse repeated queries to their
// latest occurrence.
const searchHistorySQL = `SELECT id, query, timestamp FROM search_history
    WHERE rowid IN (SELECT MAX(rowid) FROM search_history GROUP BY query)
    ORDER BY rowid DESC LIMIT ?`

// AddSearchQuery appends a query to the search log. Blank queries are ignored.
func (b *Backend) AddSearchQuery(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	_, err := b.db.ExecContext(ctx,
		"INSERT INTO search_history (id, query, timestamp) VALUES (?, ?, ?)",
		generateUUID(), query, b.timestamp())
	if err != nil {
		return fmt.Errorf("add search query: %w", err)
	}
	return nil
}

// SearchHistory returns up to limit distinct queries, newest first. A
// non-positive limit uses the configured history limit.
func (b *Backend) SearchHistory(ctx context.Context, limit int) ([]types.SearchEntry, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	if limit <= 0 {
		limit = b.config.GetHistoryLimit()
	}
	rows, err := b.db.QueryContext(ctx, searchHistorySQL, limit)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	defer rows.Close()

	out := []types.SearchEntry{}
	for rows.Next() {
		var (
			e  types.SearchEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Query, &ts); err != nil {
			return nil, fmt.Errorf("scan search entry: %w", err)
		}
		if t, err := parseTime(ts); err == nil {
			e.Timestamp = t
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	return out, nil
}

// ClearSearchHistory deletes every logged query.
func (b *Backend) ClearSearchHistory(ctx context.Context) error {
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	if _, err := b.db.ExecContext(ctx, "DELETE FROM search_history"); err != nil {
		return fmt.Errorf("clear search history: %w", err)
	}
	return nil
}
