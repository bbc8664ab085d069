package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/formulary/internal/seed"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

type seedCounts struct {
	formulas   int
	categories int
}

// bootstrap fills the formulas and categories tables from the compiled-in
// catalog. Each table is seeded only when empty and in a single transaction,
// so running it against a populated database changes nothing.
func bootstrap(ctx context.Context, db *sql.DB) (seedCounts, error) {
	var counts seedCounts

	empty, err := tableEmpty(ctx, db, "formulas")
	if err != nil {
		return counts, err
	}
	if empty {
		formulas := seed.Formulas()
		if err := insertFormulas(ctx, db, formulas); err != nil {
			return counts, err
		}
		counts.formulas = len(formulas)
	}

	empty, err = tableEmpty(ctx, db, "categories")
	if err != nil {
		return counts, err
	}
	if empty {
		categories := seed.Categories()
		if err := insertCategories(ctx, db, categories); err != nil {
			return counts, err
		}
		counts.categories = len(categories)
	}
	return counts, nil
}

func tableEmpty(ctx context.Context, db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}

const insertFormulaSQL = `INSERT INTO formulas
    (id, name, formula, latex, description, category, subcategory, difficulty, tips, examples, concepts, tags)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func insertFormulas(ctx context.Context, db *sql.DB, formulas []types.Formula) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertFormulaSQL)
	if err != nil {
		return fmt.Errorf("prepare formula insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range formulas {
		tips, err := encodeList(f.Tips)
		if err != nil {
			return err
		}
		examples, err := encodeList(f.Examples)
		if err != nil {
			return err
		}
		concepts, err := encodeList(f.Concepts)
		if err != nil {
			return err
		}
		tags, err := encodeList(f.Tags)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			f.ID, f.Name, f.Expression, f.LaTeX, f.Description,
			f.Category, f.Subcategory, string(f.Difficulty),
			tips, examples, concepts, tags,
		); err != nil {
			return fmt.Errorf("insert formula %s: %w", f.ID, err)
		}
	}
	return tx.Commit()
}

const insertCategorySQL = `INSERT INTO categories
    (id, name, icon, description, color, subcategories, ordinal)
    VALUES (?, ?, ?, ?, ?, ?, ?)`

func insertCategories(ctx context.Context, db *sql.DB, categories []types.Category) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertCategorySQL)
	if err != nil {
		return fmt.Errorf("prepare category insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range categories {
		subs, err := encodeList(c.Subcategories)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Name, c.Icon, c.Description, c.Color, subs, i,
		); err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}
