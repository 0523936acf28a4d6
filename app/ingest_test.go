package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

func TestIngest_DriveTotals(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	entries := testEntries()
	id := mustIngest(t, catalog, "HD Externo", entries)

	drives, err := catalog.ListDrives(context.Background())
	if err != nil {
		t.Fatalf("list drives failed: %v", err)
	}
	if len(drives) != 1 {
		t.Fatalf("expected 1 drive, got %d", len(drives))
	}

	d := drives[0]
	if d.ID != id {
		t.Errorf("drive id = %d, want %d", d.ID, id)
	}
	if d.Name != "HD Externo" {
		t.Errorf("drive name = %q", d.Name)
	}
	if d.TotalFiles != int64(len(entries)) {
		t.Errorf("total files = %d, want %d", d.TotalFiles, len(entries))
	}
	if d.TotalSize != sumSizes(entries) {
		t.Errorf("total size = %d, want %d", d.TotalSize, sumSizes(entries))
	}
	if d.DateScanned.IsZero() || time.Since(d.DateScanned) > time.Minute {
		t.Errorf("unexpected scan time %v", d.DateScanned)
	}

	files, err := catalog.QueryFiles(context.Background(), &FileFilter{DriveID: id})
	if err != nil {
		t.Fatalf("query files failed: %v", err)
	}
	if len(files) != len(entries) {
		t.Errorf("expected %d files for drive, got %d", len(entries), len(files))
	}
	for _, f := range files {
		if f.DriveID != id || f.DriveName != "HD Externo" {
			t.Errorf("file %s carries drive %d/%q", f.Name, f.DriveID, f.DriveName)
		}
	}
}

func TestIngest_Classification(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	id := mustIngest(t, catalog, "hd", []models.FileEntry{
		{Name: "photo.JPG", Path: "photo.JPG", Size: 10},
		{Name: "LICENSE", Path: "LICENSE", Size: 20},
	})

	files, err := catalog.QueryFiles(context.Background(), &FileFilter{DriveID: id})
	if err != nil {
		t.Fatalf("query files failed: %v", err)
	}

	byName := map[string]models.FileItem{}
	for _, f := range files {
		byName[f.Name] = f
	}

	if f := byName["photo.JPG"]; f.Extension != "jpg" || f.Type != models.TypeImagem {
		t.Errorf("photo.JPG classified as %q/%q", f.Extension, f.Type)
	}
	if f := byName["LICENSE"]; f.Extension != "none" || f.Type != models.TypeOutros {
		t.Errorf("LICENSE classified as %q/%q", f.Extension, f.Type)
	}
}

func TestIngest_EmptyDriveName(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	_, err := catalog.Ingest(context.Background(), "", testEntries())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	drives, _ := catalog.ListDrives(context.Background())
	if len(drives) != 0 {
		t.Errorf("expected no drives after rejected ingestion, got %d", len(drives))
	}
}

func TestIngest_NegativeSize(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	_, err := catalog.Ingest(context.Background(), "hd", []models.FileEntry{
		{Name: "ok.txt", Path: "ok.txt", Size: 10},
		{Name: "bad.txt", Path: "bad.txt", Size: -1},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	drives, _ := catalog.ListDrives(context.Background())
	if len(drives) != 0 {
		t.Errorf("expected no drives, got %d", len(drives))
	}
	files, _ := catalog.QueryFiles(context.Background(), nil)
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}

func TestIngest_EmptySelection(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		catalog, cleanup := setupTestCatalog(t, models.CatalogConfig{AllowEmpty: true})
		defer cleanup()

		id := mustIngest(t, catalog, "vazio", nil)

		drives, _ := catalog.ListDrives(context.Background())
		if len(drives) != 1 || drives[0].ID != id {
			t.Fatalf("expected one zero-file drive, got %v", drives)
		}
		if drives[0].TotalFiles != 0 || drives[0].TotalSize != 0 {
			t.Errorf("expected zero totals, got %d/%d", drives[0].TotalFiles, drives[0].TotalSize)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		catalog, cleanup := setupTestCatalog(t, models.CatalogConfig{AllowEmpty: false})
		defer cleanup()

		_, err := catalog.Ingest(context.Background(), "vazio", nil)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestIngest_BatchBoundaries(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, models.CatalogConfig{BatchSize: 10, AllowEmpty: true})
	defer cleanup()

	var entries []models.FileEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, models.FileEntry{
			Name: fmt.Sprintf("file%03d.txt", i),
			Path: fmt.Sprintf("docs/file%03d.txt", i),
			Size: int64(i),
		})
	}

	id := mustIngest(t, catalog, "batched", entries)

	files, err := catalog.QueryFiles(context.Background(), &FileFilter{DriveID: id})
	if err != nil {
		t.Fatalf("query files failed: %v", err)
	}
	if len(files) != 25 {
		t.Errorf("expected 25 files across 3 batches, got %d", len(files))
	}
}

func TestIngest_RollbackOnFlushFailure(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, models.CatalogConfig{BatchSize: 10, AllowEmpty: true})
	defer cleanup()

	catalog.flushHook = func(batch int) error {
		if batch == 2 {
			return errors.New("simulated quota failure")
		}
		return nil
	}

	var entries []models.FileEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, models.FileEntry{
			Name: fmt.Sprintf("file%03d.txt", i),
			Path: fmt.Sprintf("docs/file%03d.txt", i),
			Size: 1,
		})
	}

	_, err := catalog.Ingest(context.Background(), "falho", entries)
	var ierr *IngestionError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected IngestionError, got %v", err)
	}
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected wrapped StorageError, got %v", err)
	}

	// Full rollback: neither the drive row nor the first flushed batch
	// may be observable.
	drives, _ := catalog.ListDrives(context.Background())
	if len(drives) != 0 {
		t.Errorf("expected no drives after rollback, got %d", len(drives))
	}
	files, _ := catalog.QueryFiles(context.Background(), nil)
	if len(files) != 0 {
		t.Errorf("expected no files after rollback, got %d", len(files))
	}
}

func TestIngest_NotifiesListeners(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	drivesCh, cancelDrives := catalog.Subscribe(CollectionDrives)
	defer cancelDrives()
	filesCh, cancelFiles := catalog.Subscribe(CollectionFiles)
	defer cancelFiles()

	mustIngest(t, catalog, "hd", testEntries())

	select {
	case <-drivesCh:
	case <-time.After(time.Second):
		t.Error("no notification on drives collection")
	}
	select {
	case <-filesCh:
	case <-time.After(time.Second):
		t.Error("no notification on files collection")
	}
}

func TestIngest_ReimportDuplicates(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t, defaultTestConfig())
	defer cleanup()

	first := mustIngest(t, catalog, "HD Backup", testEntries())
	second := mustIngest(t, catalog, "HD Backup", testEntries())

	if first == second {
		t.Fatalf("expected distinct drive ids, got %d twice", first)
	}

	drives, _ := catalog.ListDrives(context.Background())
	if len(drives) != 2 {
		t.Errorf("expected 2 drives after re-import, got %d", len(drives))
	}
}
