package db

import "database/sql"

// SchemaSQL is the complete manifest schema. It is the single source of
// truth: tests load it through GetSchemaSQL instead of declaring tables.
const SchemaSQL = `
-- Generation runs (one per generate call or batch entry)
CREATE TABLE IF NOT EXISTS generation_runs (
	id TEXT PRIMARY KEY,
	name_base TEXT NOT NULL,
	depth INTEGER NOT NULL CHECK(depth >= 1),
	output TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_generation_runs_name_base ON generation_runs(name_base);

-- Files written by a run
CREATE TABLE IF NOT EXISTS generated_files (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	path TEXT NOT NULL,
	model TEXT NOT NULL CHECK(model IN ('myrtti', 'unreal')),
	digest TEXT NOT NULL,
	size INTEGER NOT NULL,
	PRIMARY KEY (run_id, seq),
	FOREIGN KEY (run_id) REFERENCES generation_runs(id) ON DELETE CASCADE
);
`

// InitSchema creates the manifest tables if they are missing.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
