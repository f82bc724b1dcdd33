package secondary

import "context"

// ManifestRepository defines the secondary port for the generation ledger.
type ManifestRepository interface {
	// Create persists a run together with its files.
	Create(ctx context.Context, run *RunRecord) error

	// GetByID retrieves a run and its files.
	GetByID(ctx context.Context, id string) (*RunRecord, error)

	// List retrieves runs newest first, without files.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)
}

// RunRecord represents a generation run as stored in persistence.
type RunRecord struct {
	ID        string
	NameBase  string
	Depth     int
	Output    string
	FileCount int
	CreatedAt string
	Files     []FileRecord
}

// FileRecord represents one written file of a run.
type FileRecord struct {
	Path   string // as written, output directory included
	Model  string
	Digest string // hex sha256 of the content
	Size   int64
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	NameBase string
	Limit    int
}
