package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// upsertRecentSQL moves a formula to the front of the recent list. Viewing a
// formula already in the list replaces its timestamp and sequence instead of
// adding a second row.
const upsertRecentSQL = `INSERT INTO recent (formula_id, viewed_at, seq)
    SELECT id, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM recent)
    FROM formulas WHERE id = ?
    ON CONFLICT(formula_id) DO UPDATE SET viewed_at = excluded.viewed_at, seq = excluded.seq`

const pruneRecentSQL = `DELETE FROM recent WHERE formula_id NOT IN
    (SELECT formula_id FROM recent ORDER BY seq DESC LIMIT ?)`

// RecordView records that id was viewed now and evicts the oldest entries
// beyond the recent limit.
func (b *Backend) RecordView(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	now := b.timestamp()
	return b.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, upsertRecentSQL, now, id)
		if err != nil {
			return fmt.Errorf("record view: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}
		if _, err := tx.ExecContext(ctx, "UPDATE formulas SET last_viewed = ? WHERE id = ?", now, id); err != nil {
			return fmt.Errorf("update last viewed: %w", err)
		}
		if _, err := tx.ExecContext(ctx, pruneRecentSQL, b.config.GetRecentLimit()); err != nil {
			return fmt.Errorf("prune recent: %w", err)
		}
		return nil
	})
}

// ListRecent returns recently viewed formulas, most recent first, capped at
// the recent limit.
func (b *Backend) ListRecent(ctx context.Context) ([]types.RecentFormula, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	rows, err := b.db.QueryContext(ctx,
		"SELECT "+formulaColumns+", r.viewed_at FROM formulas f JOIN recent r ON r.formula_id = f.id ORDER BY r.seq DESC LIMIT ?",
		b.config.GetRecentLimit())
	if err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	defer rows.Close()

	out := []types.RecentFormula{}
	for rows.Next() {
		var viewedAt string
		f, err := b.hydrateFormula(rows, &viewedAt)
		if err != nil {
			return nil, fmt.Errorf("scan recent: %w", err)
		}
		rf := types.RecentFormula{Formula: f}
		if t, err := parseTime(viewedAt); err == nil {
			rf.ViewedAt = t
		}
		out = append(out, rf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent: %w", err)
	}
	return out, nil
}
