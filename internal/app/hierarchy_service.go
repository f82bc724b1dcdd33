package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/example/hiergen/internal/core/hierarchy"
	"github.com/example/hiergen/internal/ctxutil"
	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/logging"
	"github.com/example/hiergen/internal/models"
	"github.com/example/hiergen/internal/ports/primary"
	"github.com/example/hiergen/internal/ports/secondary"
	"github.com/example/hiergen/internal/scaffold"
)

// HierarchyServiceImpl implements the HierarchyService interface.
type HierarchyServiceImpl struct {
	generator    *scaffold.Generator
	workspace    secondary.WorkspaceAdapter
	manifestRepo secondary.ManifestRepository // nil disables recording
}

// NewHierarchyService creates a new HierarchyService with injected dependencies.
// manifestRepo may be nil.
func NewHierarchyService(generator *scaffold.Generator, workspace secondary.WorkspaceAdapter, manifestRepo secondary.ManifestRepository) *HierarchyServiceImpl {
	return &HierarchyServiceImpl{
		generator:    generator,
		workspace:    workspace,
		manifestRepo: manifestRepo,
	}
}

// PlanHierarchy lists the files a request would write.
func (s *HierarchyServiceImpl) PlanHierarchy(ctx context.Context, req models.GenerationRequest) (*primary.HierarchyPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	plan := hierarchy.GeneratePlan(hierarchy.PlanInput{
		NameBase: req.NameBase,
		Depth:    req.Depth,
		Naming:   s.generator.Naming(),
	})

	result := &primary.HierarchyPlan{Request: req}
	for _, f := range plan.Files {
		path := filepath.Join(req.Output, f.Path)
		exists, err := s.workspace.FileExists(ctx, path)
		if err != nil {
			return nil, err
		}
		status := primary.OpCreate
		if exists {
			status = primary.OpOverwrite
		}
		result.Files = append(result.Files, primary.PlannedFile{
			Path:    path,
			Model:   string(f.Model),
			Kind:    string(f.Kind),
			Classes: f.Classes,
			Include: f.Include,
			Status:  status,
		})
	}

	return result, nil
}

// Generate writes both models for one request: the MyRTTI header first, then
// the Unreal pairs. There are no retries and no rollback.
func (s *HierarchyServiceImpl) Generate(ctx context.Context, req models.GenerationRequest) (*primary.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req, err := req.Absolute()
	if err != nil {
		return nil, err
	}

	log := logging.Logger.With("name_base", req.NameBase, "depth", req.Depth)
	if entry := ctxutil.EntryFromContext(ctx); entry != "" {
		log = log.With("entry", entry)
	}

	if err := s.workspace.CreateDirectory(ctx, req.Output); err != nil {
		return nil, errors.Wrapf(err, "failed to prepare output %s", req.Output)
	}

	resp := &primary.GenerateResponse{Request: req}

	log.Infow("Emitting MyRTTI classes", "output", req.Output)
	header, err := s.generator.EmitMyRTTI(req.NameBase, req.Depth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to emit MyRTTI hierarchy")
	}
	if err := s.write(ctx, req.Output, header, resp); err != nil {
		return nil, err
	}
	log.Infow("MyRTTI classes emitted", "files", 1)

	log.Infow("Emitting Unreal classes", "output", req.Output)
	files, err := s.generator.EmitUnreal(req.NameBase, req.Depth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to emit Unreal hierarchy")
	}
	for _, f := range files {
		if err := s.write(ctx, req.Output, f, resp); err != nil {
			return nil, err
		}
	}
	log.Infow("Unreal classes emitted", "files", len(files))

	if s.manifestRepo != nil {
		runID, err := s.record(ctx, resp)
		if err != nil {
			return nil, errors.Wrap(err, "failed to record run in manifest")
		}
		resp.RunID = runID
		log.Debugw("Recorded run", "run_id", runID)
	}

	log.Infow("Done", "files", len(resp.Files))
	return resp, nil
}

// GenerateBatch generates independent requests concurrently. The first
// failure cancels requests that have not finished.
func (s *HierarchyServiceImpl) GenerateBatch(ctx context.Context, reqs []models.GenerationRequest) ([]*primary.GenerateResponse, error) {
	owners := make(map[string]int, len(reqs))
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, errors.Wrapf(err, "batch entry %d", i)
		}
		key := req.TargetKey()
		if prev, ok := owners[key]; ok {
			return nil, errors.WithHint(
				errors.Wrapf(models.ErrInvalidRequest, "batch entries %d and %d both write %s", prev, i, key),
				"give each entry a distinct name_base or output",
			)
		}
		owners[key] = i
	}

	results := make([]*primary.GenerateResponse, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			resp, err := s.Generate(ctxutil.WithEntry(gctx, fmt.Sprintf("#%d %s", i, req.NameBase)), req)
			if err != nil {
				return errors.Wrapf(err, "batch entry %s", req.NameBase)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// write stores one rendered file under output and appends it to resp.
func (s *HierarchyServiceImpl) write(ctx context.Context, output string, f scaffold.GeneratedFile, resp *primary.GenerateResponse) error {
	path := filepath.Join(output, f.Path)
	content := []byte(f.Content)

	if err := s.workspace.WriteFile(ctx, path, content); err != nil {
		return err
	}
	logging.Logger.Debugw("Wrote file", "model", f.Model, "path", path)

	resp.Files = append(resp.Files, primary.WrittenFile{
		Path:   path,
		Model:  string(f.Model),
		Digest: digest(content),
		Size:   int64(len(content)),
	})
	return nil
}

func (s *HierarchyServiceImpl) record(ctx context.Context, resp *primary.GenerateResponse) (string, error) {
	run := &secondary.RunRecord{
		ID:       uuid.NewString(),
		NameBase: resp.Request.NameBase,
		Depth:    resp.Request.Depth,
		Output:   resp.Request.Output,
	}
	for _, f := range resp.Files {
		run.Files = append(run.Files, secondary.FileRecord{
			Path:   f.Path,
			Model:  f.Model,
			Digest: f.Digest,
			Size:   f.Size,
		})
	}

	if err := s.manifestRepo.Create(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

func digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Ensure HierarchyServiceImpl implements the interface.
var _ primary.HierarchyService = (*HierarchyServiceImpl)(nil)
