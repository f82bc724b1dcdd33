// Package primary defines the primary ports (driving side) of the application.
package primary

import (
	"context"

	"github.com/example/hiergen/internal/models"
)

// HierarchyService defines the primary port for generating class chains.
type HierarchyService interface {
	// PlanHierarchy lists the files a request would write and whether each
	// already exists. Nothing is written.
	PlanHierarchy(ctx context.Context, req models.GenerationRequest) (*HierarchyPlan, error)

	// Generate writes the MyRTTI header, then the Unreal header/source pairs.
	// The first failure aborts the run; files already written stay in place.
	Generate(ctx context.Context, req models.GenerationRequest) (*GenerateResponse, error)

	// GenerateBatch runs independent requests concurrently. Requests that
	// target the same files are rejected before anything is written.
	GenerateBatch(ctx context.Context, reqs []models.GenerationRequest) ([]*GenerateResponse, error)
}

// OpStatus is the planned action for a file.
type OpStatus string

const (
	OpCreate    OpStatus = "CREATE"
	OpOverwrite OpStatus = "OVERWRITE"
)

// HierarchyPlan describes the files of one request.
type HierarchyPlan struct {
	Request models.GenerationRequest
	Files   []PlannedFile
}

// PlannedFile is one file of a HierarchyPlan.
type PlannedFile struct {
	Path    string // output directory included
	Model   string
	Kind    string
	Classes []string
	Include string
	Status  OpStatus
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	Request models.GenerationRequest
	Files   []WrittenFile
	RunID   string // empty when the manifest is disabled
}

// WrittenFile is one file written by a run.
type WrittenFile struct {
	Path   string // output directory included
	Model  string
	Digest string
	Size   int64
}
