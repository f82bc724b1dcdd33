package app

import (
	"context"
	"io/fs"

	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/ports/primary"
	"github.com/example/hiergen/internal/ports/secondary"
)

// ManifestServiceImpl implements the ManifestService interface.
type ManifestServiceImpl struct {
	repo      secondary.ManifestRepository
	workspace secondary.WorkspaceAdapter
}

// NewManifestService creates a new ManifestService with injected dependencies.
func NewManifestService(repo secondary.ManifestRepository, workspace secondary.WorkspaceAdapter) *ManifestServiceImpl {
	return &ManifestServiceImpl{
		repo:      repo,
		workspace: workspace,
	}
}

// ListRuns returns recorded runs, newest first.
func (s *ManifestServiceImpl) ListRuns(ctx context.Context, req primary.ListRunsRequest) ([]*primary.Run, error) {
	records, err := s.repo.List(ctx, secondary.RunFilters{
		NameBase: req.NameBase,
		Limit:    req.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = s.recordToRun(r)
	}
	return runs, nil
}

// GetRun returns a run with its files.
func (s *ManifestServiceImpl) GetRun(ctx context.Context, runID string) (*primary.Run, error) {
	record, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	return s.recordToRun(record), nil
}

// VerifyRun re-reads every file of a run and compares its digest.
func (s *ManifestServiceImpl) VerifyRun(ctx context.Context, runID string) (*primary.Verification, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	v := &primary.Verification{Run: run}
	for _, f := range run.Files {
		state, err := s.verifyFile(ctx, f)
		if err != nil {
			return nil, err
		}
		v.Files = append(v.Files, primary.VerifiedFile{Path: f.Path, State: state})
	}
	return v, nil
}

func (s *ManifestServiceImpl) verifyFile(ctx context.Context, f primary.WrittenFile) (primary.FileState, error) {
	content, err := s.workspace.ReadFile(ctx, f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return primary.FileMissing, nil
	}
	if err != nil {
		return "", err
	}
	if digest(content) != f.Digest {
		return primary.FileModified, nil
	}
	return primary.FileOK, nil
}

func (s *ManifestServiceImpl) recordToRun(r *secondary.RunRecord) *primary.Run {
	run := &primary.Run{
		ID:        r.ID,
		NameBase:  r.NameBase,
		Depth:     r.Depth,
		Output:    r.Output,
		FileCount: r.FileCount,
		CreatedAt: r.CreatedAt,
	}
	for _, f := range r.Files {
		run.Files = append(run.Files, primary.WrittenFile{
			Path:   f.Path,
			Model:  f.Model,
			Digest: f.Digest,
			Size:   f.Size,
		})
	}
	return run
}

// Ensure ManifestServiceImpl implements the interface.
var _ primary.ManifestService = (*ManifestServiceImpl)(nil)
