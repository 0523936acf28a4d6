package app

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"

	_ "modernc.org/sqlite"
)

const (
	// DefaultBatchSize bounds how many file records accumulate in memory
	// before being flushed inside the ingestion transaction.
	DefaultBatchSize = 2000

	// DefaultPageSize is the page size used by paginated search views.
	DefaultPageSize = 50
)

// Catalog is an open handle to one catalog database. It owns the SQLite
// connection and the commit notifier; callers construct it explicitly and
// close it when done.
type Catalog struct {
	db         *sql.DB
	batchSize  int
	allowEmpty bool
	notifier   *Notifier

	// flushHook, when set, runs before each batch flush during ingestion.
	// Used by tests to inject storage failures mid-transaction.
	flushHook func(batch int) error
}

// OpenCatalog opens (creating if needed) the catalog database at
// cfg.DBPath and applies migrations.
func OpenCatalog(cfg models.CatalogConfig) (*Catalog, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		db.Close()
		return nil, &StorageError{Op: "open", Err: err}
	}
	db.Exec(`PRAGMA busy_timeout = 5000`)

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, &StorageError{Op: "migrate", Err: err}
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	return &Catalog{
		db:         db,
		batchSize:  batch,
		allowEmpty: cfg.AllowEmpty,
		notifier:   NewNotifier(),
	}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Subscribe registers a listener for post-commit notifications on the given
// collection (CollectionDrives or CollectionFiles). The returned cancel
// func must be called when the consumer goes away.
func (c *Catalog) Subscribe(collection string) (<-chan struct{}, func()) {
	return c.notifier.Subscribe(collection)
}
