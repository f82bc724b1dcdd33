// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"os"

	"github.com/example/hiergen/internal/errors"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// WorkspaceAdapter implements secondary.WorkspaceAdapter on the local filesystem.
type WorkspaceAdapter struct{}

// NewWorkspaceAdapter creates a new filesystem workspace adapter.
func NewWorkspaceAdapter() *WorkspaceAdapter {
	return &WorkspaceAdapter{}
}

// CreateDirectory creates a directory with all parent directories.
func (a *WorkspaceAdapter) CreateDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return errors.Wrap(err, "failed to create directory")
	}
	return nil
}

// DirectoryExists checks if a directory exists.
func (a *WorkspaceAdapter) DirectoryExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check directory")
	}
	return info.IsDir(), nil
}

// FileExists checks if a regular file exists.
func (a *WorkspaceAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check file")
	}
	return info.Mode().IsRegular(), nil
}

// WriteFile truncates or creates path and writes content. The parent
// directory must already exist.
func (a *WorkspaceAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// ReadFile reads path.
func (a *WorkspaceAdapter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}
