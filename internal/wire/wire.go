// Package wire provides dependency injection for hiergen.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"sync"

	cliadapter "github.com/example/hiergen/internal/adapters/cli"
	"github.com/example/hiergen/internal/adapters/filesystem"
	"github.com/example/hiergen/internal/adapters/sqlite"
	"github.com/example/hiergen/internal/app"
	"github.com/example/hiergen/internal/config"
	"github.com/example/hiergen/internal/db"
	"github.com/example/hiergen/internal/errors"
	"github.com/example/hiergen/internal/logging"
	"github.com/example/hiergen/internal/ports/primary"
	"github.com/example/hiergen/internal/scaffold"
)

var (
	cfg = config.DefaultConfig()

	database  *sql.DB
	dbErr     error
	dbOnce    sync.Once
	workspace = filesystem.NewWorkspaceAdapter()

	hierarchyService primary.HierarchyService
	hierarchyErr     error
	hierarchyOnce    sync.Once

	manifestService primary.ManifestService
	manifestErr     error
	manifestOnce    sync.Once
)

// Configure sets the configuration services are built from. It must be called
// before the first service is requested.
func Configure(c *config.Config) {
	cfg = c
}

// Config returns the active configuration.
func Config() *config.Config {
	return cfg
}

// manifestDB opens the manifest database once.
func manifestDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		path := cfg.Manifest.Path
		if path == "" {
			path, dbErr = db.DefaultPath()
			if dbErr != nil {
				return
			}
		}
		logging.Logger.Debugw("Opening manifest", "path", path)
		database, dbErr = db.Open(path)
	})
	return database, dbErr
}

// HierarchyService returns the singleton HierarchyService instance. Runs are
// recorded only when the manifest is enabled.
func HierarchyService() (primary.HierarchyService, error) {
	hierarchyOnce.Do(func() {
		generator := scaffold.NewGenerator(cfg.ToNaming())
		if !cfg.Manifest.Enabled {
			hierarchyService = app.NewHierarchyService(generator, workspace, nil)
			return
		}

		database, err := manifestDB()
		if err != nil {
			hierarchyErr = errors.Wrap(err, "failed to initialize manifest")
			return
		}
		hierarchyService = app.NewHierarchyService(generator, workspace, sqlite.NewManifestRepository(database))
	})
	return hierarchyService, hierarchyErr
}

// ManifestService returns the singleton ManifestService instance.
func ManifestService() (primary.ManifestService, error) {
	manifestOnce.Do(func() {
		database, err := manifestDB()
		if err != nil {
			manifestErr = errors.Wrap(err, "failed to initialize manifest")
			return
		}
		manifestService = app.NewManifestService(sqlite.NewManifestRepository(database), workspace)
	})
	return manifestService, manifestErr
}

// HierarchyAdapterWithOutput returns a new HierarchyAdapter writing to the given output.
func HierarchyAdapterWithOutput(out io.Writer) (*cliadapter.HierarchyAdapter, error) {
	svc, err := HierarchyService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewHierarchyAdapter(svc, out), nil
}

// ManifestAdapterWithOutput returns a new ManifestAdapter writing to the given output.
func ManifestAdapterWithOutput(out io.Writer) (*cliadapter.ManifestAdapter, error) {
	svc, err := ManifestService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewManifestAdapter(svc, out), nil
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	return cliadapter.NewReportAdapter(out)
}

// Close releases the manifest database if it was opened. It is safe to call
// more than once.
func Close() error {
	if database == nil {
		return nil
	}
	err := database.Close()
	database = nil
	return err
}
