package primary

import "context"

// ManifestService defines the primary port for the generation ledger.
type ManifestService interface {
	// ListRuns returns recorded runs, newest first.
	ListRuns(ctx context.Context, req ListRunsRequest) ([]*Run, error)

	// GetRun returns a run with its files.
	GetRun(ctx context.Context, runID string) (*Run, error)

	// VerifyRun compares the files of a run with what is on disk now.
	VerifyRun(ctx context.Context, runID string) (*Verification, error)
}

// ListRunsRequest contains filters for listing runs.
type ListRunsRequest struct {
	NameBase string
	Limit    int
}

// Run represents a recorded generation run at the port boundary.
type Run struct {
	ID        string
	NameBase  string
	Depth     int
	Output    string
	FileCount int
	CreatedAt string
	Files     []WrittenFile
}

// FileState is the verification outcome for one file.
type FileState string

const (
	FileOK       FileState = "OK"
	FileModified FileState = "MODIFIED"
	FileMissing  FileState = "MISSING"
)

// Verification is the result of VerifyRun.
type Verification struct {
	Run   *Run
	Files []VerifiedFile
}

// VerifiedFile is one file of a Verification.
type VerifiedFile struct {
	Path  string
	State FileState
}

// Clean reports whether every file matched its recorded digest.
func (v *Verification) Clean() bool {
	for _, f := range v.Files {
		if f.State != FileOK {
			return false
		}
	}
	return true
}
