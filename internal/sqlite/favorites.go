package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

// insertFavoriteSQL adds a favorite row only when the formula exists. The
// sequence number orders favorites by creation.
const insertFavoriteSQL = `INSERT OR IGNORE INTO favorites (formula_id, created_at, seq)
    SELECT id, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM favorites)
    FROM formulas WHERE id = ?`

// ToggleFavorite flips the favorite state of id and returns the new state.
// The delete runs first: if it removed a row the formula was a favorite,
// otherwise the insert makes it one. Both happen in one transaction under
// the write lock, so concurrent toggles never observe a half-applied flip.
func (b *Backend) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, types.ErrInvalidID
	}
	if err := b.writeLock(); err != nil {
		return false, err
	}
	defer b.mu.Unlock()

	var favorite bool
	err := b.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM favorites WHERE formula_id = ?", id)
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if removed == 0 {
			res, err = tx.ExecContext(ctx, insertFavoriteSQL, b.timestamp(), id)
			if err != nil {
				return fmt.Errorf("insert favorite: %w", err)
			}
			added, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if added == 0 {
				return types.ErrNotFound
			}
			favorite = true
		}
		return setFavoriteFlag(ctx, tx, id, favorite)
	})
	if err != nil {
		return false, err
	}
	return favorite, nil
}

// AddFavorite marks id as a favorite. Adding an existing favorite is a no-op.
func (b *Backend) AddFavorite(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	return b.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, insertFavoriteSQL, b.timestamp(), id); err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
		res, err := tx.ExecContext(ctx, "UPDATE formulas SET is_favorite = 1 WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("mark favorite: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return types.ErrNotFound
		}
		return nil
	})
}

// RemoveFavorite unmarks id. Removing a formula that is not a favorite is a
// no-op.
func (b *Backend) RemoveFavorite(ctx context.Context, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if err := b.writeLock(); err != nil {
		return err
	}
	defer b.mu.Unlock()

	return b.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM favorites WHERE formula_id = ?", id); err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		return setFavoriteFlag(ctx, tx, id, false)
	})
}

func setFavoriteFlag(ctx context.Context, tx *sql.Tx, id string, favorite bool) error {
	flag := 0
	if favorite {
		flag = 1
	}
	if _, err := tx.ExecContext(ctx, "UPDATE formulas SET is_favorite = ? WHERE id = ?", flag, id); err != nil {
		return fmt.Errorf("update favorite flag: %w", err)
	}
	return nil
}

// IsFavorite reports whether id is currently a favorite.
func (b *Backend) IsFavorite(ctx context.Context, id string) (bool, error) {
	if err := b.readLock(); err != nil {
		return false, err
	}
	defer b.mu.RUnlock()

	var n int
	err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM favorites WHERE formula_id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("is favorite %s: %w", id, err)
	}
	return n > 0, nil
}

// ListFavorites returns favorite formulas, most recently added first.
func (b *Backend) ListFavorites(ctx context.Context) ([]types.Formula, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	formulas, err := b.queryFormulas(ctx,
		"SELECT "+formulaColumns+" FROM formulas f JOIN favorites fav ON fav.formula_id = f.id ORDER BY fav.seq DESC")
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return formulas, nil
}
