package app

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/example/hiergen/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockWorkspace implements secondary.WorkspaceAdapter in memory.
type mockWorkspace struct {
	mu        sync.Mutex
	dirs      map[string]bool
	files     map[string][]byte
	writes    []string
	failAfter int // fail every write after this many successes; 0 disables
	writeErr  error
	createErr error
	readErr   error
	statErr   error
}

func newMockWorkspace() *mockWorkspace {
	return &mockWorkspace{
		dirs:  make(map[string]bool),
		files: make(map[string][]byte),
	}
}

func (m *mockWorkspace) CreateDirectory(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.dirs[path] = true
	return nil
}

func (m *mockWorkspace) DirectoryExists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dirs[path], nil
}

func (m *mockWorkspace) FileExists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statErr != nil {
		return false, m.statErr
	}
	_, ok := m.files[path]
	return ok, nil
}

func (m *mockWorkspace) WriteFile(ctx context.Context, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.failAfter > 0 && len(m.writes) >= m.failAfter {
		return m.writeErr
	}
	m.files[path] = append([]byte(nil), content...)
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockWorkspace) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return content, nil
}

// mockManifestRepository implements secondary.ManifestRepository for testing.
type mockManifestRepository struct {
	mu        sync.Mutex
	runs      map[string]*secondary.RunRecord
	order     []string
	createErr error
	listErr   error
}

func newMockManifestRepository() *mockManifestRepository {
	return &mockManifestRepository{
		runs: make(map[string]*secondary.RunRecord),
	}
}

func (m *mockManifestRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	run.FileCount = len(run.Files)
	run.CreatedAt = "2026-01-01T00:00:00Z"
	m.runs[run.ID] = run
	m.order = append(m.order, run.ID)
	return nil
}

func (m *mockManifestRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if run, ok := m.runs[id]; ok {
		return run, nil
	}
	return nil, errors.New("run not found")
}

func (m *mockManifestRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.RunRecord
	for i := len(m.order) - 1; i >= 0; i-- {
		run := m.runs[m.order[i]]
		if filters.NameBase != "" && run.NameBase != filters.NameBase {
			continue
		}
		result = append(result, run)
		if filters.Limit > 0 && len(result) == filters.Limit {
			break
		}
	}
	return result, nil
}
