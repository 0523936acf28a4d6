package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// setupTestCatalog creates a catalog backed by a temporary SQLite database
func setupTestCatalog(t *testing.T, cfg models.CatalogConfig) (*Catalog, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "catalogo_test_*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	cfg.DBPath = filepath.Join(tmpDir, "test.db")
	catalog, err := OpenCatalog(cfg)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open catalog: %v", err)
	}

	cleanup := func() {
		catalog.Close()
		os.RemoveAll(tmpDir)
	}

	return catalog, cleanup
}

func defaultTestConfig() models.CatalogConfig {
	return models.CatalogConfig{AllowEmpty: true}
}

// testEntries is a small mixed fixture covering several type categories
func testEntries() []models.FileEntry {
	return []models.FileEntry{
		{Name: "report.pdf", Path: "documents/report.pdf", Size: 1024 * 1024},
		{Name: "notes.txt", Path: "documents/notes.txt", Size: 512},
		{Name: "photo.jpg", Path: "images/photo.jpg", Size: 5 * 1024 * 1024},
		{Name: "screenshot.png", Path: "images/screenshot.png", Size: 2 * 1024 * 1024},
		{Name: "movie.mp4", Path: "videos/movie.mp4", Size: 500 * 1024 * 1024},
		{Name: "backup.zip", Path: "backup.zip", Size: 10 * 1024 * 1024},
		{Name: "LICENSE", Path: "LICENSE", Size: 1024},
	}
}

func mustIngest(t *testing.T, c *Catalog, name string, entries []models.FileEntry) int64 {
	t.Helper()

	id, err := c.Ingest(context.Background(), name, entries)
	if err != nil {
		t.Fatalf("ingest of %s failed: %v", name, err)
	}
	return id
}

func sumSizes(entries []models.FileEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
