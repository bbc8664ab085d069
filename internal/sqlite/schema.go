package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema DDL. Every statement is safe to run against an existing database.
const (
	createFormulas = `CREATE TABLE IF NOT EXISTS formulas (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    formula TEXT NOT NULL,
    latex TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    subcategory TEXT NOT NULL DEFAULT '',
    difficulty TEXT NOT NULL,
    tips TEXT NOT NULL DEFAULT '[]',
    examples TEXT NOT NULL DEFAULT '[]',
    concepts TEXT NOT NULL DEFAULT '[]',
    tags TEXT NOT NULL DEFAULT '[]',
    is_favorite INTEGER NOT NULL DEFAULT 0,
    last_viewed TEXT
);`

	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    icon TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    color TEXT NOT NULL DEFAULT '',
    subcategories TEXT NOT NULL DEFAULT '[]',
    ordinal INTEGER NOT NULL
);`

	createFavorites = `CREATE TABLE IF NOT EXISTS favorites (
    formula_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    seq INTEGER NOT NULL,
    FOREIGN KEY (formula_id) REFERENCES formulas(id) ON DELETE CASCADE
);`

	createRecent = `CREATE TABLE IF NOT EXISTS recent (
    formula_id TEXT PRIMARY KEY,
    viewed_at TEXT NOT NULL,
    seq INTEGER NOT NULL,
    FOREIGN KEY (formula_id) REFERENCES formulas(id) ON DELETE CASCADE
);`

	createSearchHistory = `CREATE TABLE IF NOT EXISTS search_history (
    id TEXT PRIMARY KEY,
    query TEXT NOT NULL,
    timestamp TEXT NOT NULL
);`

	createUserPreferences = `CREATE TABLE IF NOT EXISTS user_preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL.
const (
	createIndexFormulasCategory   = `CREATE INDEX IF NOT EXISTS idx_formulas_category ON formulas(category);`
	createIndexFormulasDifficulty = `CREATE INDEX IF NOT EXISTS idx_formulas_difficulty ON formulas(difficulty);`
	createIndexFavoritesSeq       = `CREATE INDEX IF NOT EXISTS idx_favorites_seq ON favorites(seq);`
	createIndexRecentSeq          = `CREATE INDEX IF NOT EXISTS idx_recent_seq ON recent(seq);`
	createIndexSearchQuery        = `CREATE INDEX IF NOT EXISTS idx_search_history_query ON search_history(query);`
)

var schemaStatements = []string{
	createFormulas,
	createCategories,
	createFavorites,
	createRecent,
	createSearchHistory,
	createUserPreferences,
	createIndexFormulasCategory,
	createIndexFormulasDifficulty,
	createIndexFavoritesSeq,
	createIndexRecentSeq,
	createIndexSearchQuery,
}

func createSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
