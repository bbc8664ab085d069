package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/formulary/pkg/types"
)

const formulaColumns = `f.id, f.name, f.formula, f.latex, f.description, f.category, f.subcategory,
    f.difficulty, f.tips, f.examples, f.concepts, f.tags, f.is_favorite, f.last_viewed`

const formulaOrder = ` ORDER BY f.name ASC, f.id ASC`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateFormula converts a row selected with formulaColumns (optionally
// followed by extra columns) into a Formula.
func (b *Backend) hydrateFormula(row scanner, extra ...any) (types.Formula, error) {
	var (
		f                              types.Formula
		difficulty                     string
		tips, examples, concepts, tags string
		isFavorite                     int
		lastViewed                     sql.NullString
	)
	dest := []any{
		&f.ID, &f.Name, &f.Expression, &f.LaTeX, &f.Description, &f.Category, &f.Subcategory,
		&difficulty, &tips, &examples, &concepts, &tags, &isFavorite, &lastViewed,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return f, err
	}

	f.Difficulty = types.Difficulty(difficulty)
	f.Tips = b.decodeStrings(tips, f.ID, "tips")
	f.Examples = b.decodeExamples(examples, f.ID)
	f.Concepts = b.decodeStrings(concepts, f.ID, "concepts")
	f.Tags = b.decodeStrings(tags, f.ID, "tags")
	f.IsFavorite = isFavorite != 0
	if lastViewed.Valid {
		if t, err := parseTime(lastViewed.String); err == nil {
			f.LastViewed = &t
		}
	}
	return f, nil
}

func (b *Backend) queryFormulas(ctx context.Context, query string, args ...any) ([]types.Formula, error) {
	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []types.Formula{}
	for rows.Next() {
		f, err := b.hydrateFormula(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ListFormulas returns formulas matching filter ordered by name.
func (b *Backend) ListFormulas(ctx context.Context, filter types.FormulaFilter) ([]types.Formula, error) {
	if filter.MaxDifficulty != "" && !filter.MaxDifficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidDifficulty, filter.MaxDifficulty)
	}
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		where = append(where, "f.category = ?")
		args = append(args, filter.Category)
	}
	if filter.Subcategory != "" {
		where = append(where, "f.subcategory = ?")
		args = append(args, filter.Subcategory)
	}
	if filter.MaxDifficulty != "" {
		var levels []string
		for _, d := range types.DifficultyLevels {
			if d.AtMost(filter.MaxDifficulty) {
				levels = append(levels, "?")
				args = append(args, string(d))
			}
		}
		where = append(where, "f.difficulty IN ("+strings.Join(levels, ", ")+")")
	}

	query := "SELECT " + formulaColumns + " FROM formulas f"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += formulaOrder

	formulas, err := b.queryFormulas(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list formulas: %w", err)
	}
	return formulas, nil
}

// GetFormula returns the formula with the given id.
func (b *Backend) GetFormula(ctx context.Context, id string) (types.Formula, error) {
	if id == "" {
		return types.Formula{}, types.ErrInvalidID
	}
	if err := b.readLock(); err != nil {
		return types.Formula{}, err
	}
	defer b.mu.RUnlock()

	row := b.db.QueryRowContext(ctx, "SELECT "+formulaColumns+" FROM formulas f WHERE f.id = ?", id)
	f, err := b.hydrateFormula(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Formula{}, types.ErrNotFound
		}
		return types.Formula{}, fmt.Errorf("get formula %s: %w", id, err)
	}
	return f, nil
}

// ListCategories returns category metadata in seed order.
func (b *Backend) ListCategories(ctx context.Context) ([]types.Category, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	rows, err := b.db.QueryContext(ctx,
		"SELECT id, name, icon, description, color, subcategories FROM categories ORDER BY ordinal ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []types.Category{}
	for rows.Next() {
		var (
			c    types.Category
			subs string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Description, &c.Color, &subs); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Subcategories = b.decodeStrings(subs, c.ID, "subcategories")
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// DistinctCategories returns the category ids present on formulas, sorted.
func (b *Backend) DistinctCategories(ctx context.Context) ([]string, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	out, err := b.queryStrings(ctx, "SELECT DISTINCT category FROM formulas ORDER BY category ASC")
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return out, nil
}

// DistinctDifficulties returns the difficulties present on formulas, easiest
// first.
func (b *Backend) DistinctDifficulties(ctx context.Context) ([]types.Difficulty, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	values, err := b.queryStrings(ctx, "SELECT DISTINCT difficulty FROM formulas")
	if err != nil {
		return nil, fmt.Errorf("distinct difficulties: %w", err)
	}
	out := make([]types.Difficulty, 0, len(values))
	for _, v := range values {
		out = append(out, types.Difficulty(v))
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Rank(), out[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out, nil
}

// Subcategories returns the distinct non-empty subcategories used by formulas
// of a category, sorted.
func (b *Backend) Subcategories(ctx context.Context, category string) ([]string, error) {
	if err := b.readLock(); err != nil {
		return nil, err
	}
	defer b.mu.RUnlock()

	out, err := b.queryStrings(ctx,
		"SELECT DISTINCT subcategory FROM formulas WHERE category = ? AND subcategory != '' ORDER BY subcategory ASC",
		category)
	if err != nil {
		return nil, fmt.Errorf("subcategories of %s: %w", category, err)
	}
	return out, nil
}

func (b *Backend) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := b.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
