// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/ports/secondary"
)

// ManifestRepository implements secondary.ManifestRepository with SQLite.
type ManifestRepository struct {
	db *sql.DB
}

// NewManifestRepository creates a new SQLite manifest repository.
func NewManifestRepository(db *sql.DB) *ManifestRepository {
	return &ManifestRepository{db: db}
}

// Create persists a run and its files in one transaction.
func (r *ManifestRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin manifest transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO generation_runs (id, name_base, depth, output) VALUES (?, ?, ?, ?)",
		run.ID, run.NameBase, run.Depth, run.Output,
	)
	if err != nil {
		return errors.Wrap(err, "failed to create run")
	}

	for i, f := range run.Files {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO generated_files (run_id, seq, path, model, digest, size) VALUES (?, ?, ?, ?, ?, ?)",
			run.ID, i, f.Path, f.Model, f.Digest, f.Size,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to record file %s", f.Path)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit run")
	}
	return nil
}

// GetByID retrieves a run and its files in write order.
func (r *ManifestRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	var createdAt time.Time

	record := &secondary.RunRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT r.id, r.name_base, r.depth, r.output, r.created_at,
			(SELECT COUNT(*) FROM generated_files f WHERE f.run_id = r.id)
		FROM generation_runs r WHERE r.id = ?`,
		id,
	).Scan(&record.ID, &record.NameBase, &record.Depth, &record.Output, &createdAt, &record.FileCount)

	if err == sql.ErrNoRows {
		return nil, errors.Newf("run %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	rows, err := r.db.QueryContext(ctx,
		"SELECT path, model, digest, size FROM generated_files WHERE run_id = ? ORDER BY seq ASC",
		id,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list run files")
	}
	defer rows.Close()

	for rows.Next() {
		var f secondary.FileRecord
		if err := rows.Scan(&f.Path, &f.Model, &f.Digest, &f.Size); err != nil {
			return nil, errors.Wrap(err, "failed to scan run file")
		}
		record.Files = append(record.Files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list run files")
	}

	return record, nil
}

// List retrieves runs newest first.
func (r *ManifestRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := `SELECT r.id, r.name_base, r.depth, r.output, r.created_at,
			(SELECT COUNT(*) FROM generated_files f WHERE f.run_id = r.id)
		FROM generation_runs r`
	var args []any

	if filters.NameBase != "" {
		query += " WHERE r.name_base = ?"
		args = append(args, filters.NameBase)
	}
	query += " ORDER BY r.created_at DESC, r.rowid DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		var createdAt time.Time
		record := &secondary.RunRecord{}
		if err := rows.Scan(&record.ID, &record.NameBase, &record.Depth, &record.Output, &createdAt, &record.FileCount); err != nil {
			return nil, errors.Wrap(err, "failed to scan run")
		}
		record.CreatedAt = createdAt.Format(time.RFC3339)
		runs = append(runs, record)
	}

	return runs, rows.Err()
}

// Ensure ManifestRepository implements the interface.
var _ secondary.ManifestRepository = (*ManifestRepository)(nil)
