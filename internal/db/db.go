package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/hiergen/internal/errors"
)

// Open opens (creating if needed) the manifest database at path and applies
// the schema. Use ":memory:" for a throwaway database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create manifest directory")
		}
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	// Batch runs record concurrently; a single connection serialises writers
	// and keeps ":memory:" databases shared.
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "failed to enable foreign keys")
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, errors.Wrap(err, "failed to initialize schema")
	}

	return database, nil
}

// DefaultPath returns ~/.hiergen/manifest.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".hiergen", "manifest.db"), nil
}
