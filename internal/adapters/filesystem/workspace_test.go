package filesystem_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/hiergen/internal/adapters/filesystem"
	"github.com/example/hiergen/internal/errors"
)

func TestWorkspaceAdapter_DirectoryOperations(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter()
	ctx := context.Background()
	testDir := filepath.Join(tmpDir, "gen", "nested")

	// Directory should not exist initially
	exists, err := adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if exists {
		t.Error("expected directory to not exist")
	}

	if err := adapter.CreateDirectory(ctx, testDir); err != nil {
		t.Fatalf("CreateDirectory failed: %v", err)
	}

	exists, err = adapter.DirectoryExists(ctx, testDir)
	if err != nil {
		t.Fatalf("DirectoryExists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}

	// Creating twice is not an error
	if err := adapter.CreateDirectory(ctx, testDir); err != nil {
		t.Errorf("second CreateDirectory failed: %v", err)
	}
}

func TestWorkspaceAdapter_WriteFileTruncates(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter()
	ctx := context.Background()
	path := filepath.Join(tmpDir, "myrtti_Foo.h")

	if err := adapter.WriteFile(ctx, path, []byte("a much longer first version\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := adapter.WriteFile(ctx, path, []byte("short\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "short\n" {
		t.Errorf("content = %q, want %q", got, "short\n")
	}
}

func TestWorkspaceAdapter_WriteIntoMissingDirectory(t *testing.T) {
	adapter := filesystem.NewWorkspaceAdapter()
	path := filepath.Join(t.TempDir(), "absent", "Foo.h")

	err := adapter.WriteFile(context.Background(), path, []byte("x"))
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestWorkspaceAdapter_ReadMissingFile(t *testing.T) {
	adapter := filesystem.NewWorkspaceAdapter()

	_, err := adapter.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.cpp"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestWorkspaceAdapter_WriteHonoursCancellation(t *testing.T) {
	adapter := filesystem.NewWorkspaceAdapter()
	path := filepath.Join(t.TempDir(), "Foo.h")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := adapter.WriteFile(ctx, path, []byte("x")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not be written after cancellation")
	}
}

func TestWorkspaceAdapter_FileExists(t *testing.T) {
	tmpDir := t.TempDir()
	adapter := filesystem.NewWorkspaceAdapter()
	ctx := context.Background()
	path := filepath.Join(tmpDir, "AUnreal_Foo_0.h")

	exists, err := adapter.FileExists(ctx, path)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("expected file to not exist")
	}

	if err := adapter.WriteFile(ctx, path, []byte("#pragma once\n")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	exists, err = adapter.FileExists(ctx, path)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	// A directory is not a file
	exists, err = adapter.FileExists(ctx, tmpDir)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("expected directory to not count as a file")
	}
}
