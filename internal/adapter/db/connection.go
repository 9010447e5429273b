package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// ConnectDB opens a named in-memory SQLite database and creates the schema.
// The database lives only as long as the returned handle.
func ConnectDB(name string) (*sqlx.DB, error) {
	if name == "" {
		name = "marceneiro"
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single pinned connection keeps the in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS obras (
            id INTEGER PRIMARY KEY,
            seq INTEGER NOT NULL,
            name TEXT NOT NULL,
            client TEXT NOT NULL DEFAULT '',
            start_date TEXT NOT NULL,
            expected_delivery TEXT NOT NULL,
            responsible TEXT NOT NULL DEFAULT '',
            notes TEXT NULL,
            status TEXT NOT NULL,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS tarefas (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            obra_id INTEGER NOT NULL,
            title TEXT NOT NULL,
            status TEXT NOT NULL,
            notes TEXT NULL,
            created_at TEXT NOT NULL,
            updated_at TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tarefas_obra ON tarefas(obra_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
