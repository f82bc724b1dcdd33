// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import "context"

// WorkspaceAdapter defines the secondary port for the output directory.
type WorkspaceAdapter interface {
	// CreateDirectory creates a directory with all parent directories.
	CreateDirectory(ctx context.Context, path string) error

	// DirectoryExists reports whether path exists and is a directory.
	DirectoryExists(ctx context.Context, path string) (bool, error)

	// FileExists reports whether path exists and is a regular file.
	FileExists(ctx context.Context, path string) (bool, error)

	// WriteFile truncates (or creates) path and writes content.
	WriteFile(ctx context.Context, path string, content []byte) error

	// ReadFile returns the content of path. A missing file yields an error
	// satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
