package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// Ingest catalogs one drive: it validates the listing, then writes the
// Drive summary row and every file row in a single transaction and returns
// the new drive id. Records are buffered and flushed in batches to bound
// peak memory on very large listings; on any failure the whole run rolls
// back and no partial catalog state remains visible.
func (c *Catalog) Ingest(ctx context.Context, driveName string, entries []models.FileEntry) (int64, error) {
	if driveName == "" {
		return 0, &ValidationError{Field: "driveName", Reason: "must not be empty"}
	}
	if len(entries) == 0 && !c.allowEmpty {
		return 0, &ValidationError{Field: "entries", Reason: "selection is empty"}
	}

	// Single cheap pass for the summary row; doubles as input validation.
	var totalSize int64
	for _, e := range entries {
		if e.Size < 0 {
			return 0, &ValidationError{Field: "entries", Reason: fmt.Sprintf("negative size for %q", e.Name)}
		}
		totalSize += e.Size
	}

	driveID, err := c.ingestTx(ctx, driveName, entries, totalSize)
	if err != nil {
		return 0, &IngestionError{Drive: driveName, Err: err}
	}

	c.notifier.Notify(CollectionDrives, CollectionFiles)
	log.Printf("Cataloged drive %s: %d files, %d bytes", driveName, len(entries), totalSize)
	return driveID, nil
}

func (c *Catalog) ingestTx(ctx context.Context, driveName string, entries []models.FileEntry, totalSize int64) (int64, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, &StorageError{Op: "begin", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	driveID, err := createDrive(ctx, tx, models.Drive{
		Name:        driveName,
		DateScanned: time.Now(),
		TotalFiles:  int64(len(entries)),
		TotalSize:   totalSize,
	})
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO files(drive_id, drive_name, name, path, size, ext, type, name_lower, path_lower)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return 0, &StorageError{Op: "prepare", Err: err}
	}
	defer stmt.Close()

	batch := make([]models.FileItem, 0, c.batchSize)
	batchNo := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		batchNo++
		if c.flushHook != nil {
			if err := c.flushHook(batchNo); err != nil {
				return &StorageError{Op: "flush", Err: err}
			}
		}
		if err := bulkInsertFiles(ctx, stmt, batch); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for _, e := range entries {
		ext := ExtensionOf(e.Name)
		path := e.Path
		if path == "" {
			path = e.Name
		}

		batch = append(batch, models.FileItem{
			DriveID:   driveID,
			DriveName: driveName,
			Name:      e.Name,
			Path:      path,
			Size:      e.Size,
			Extension: ext,
			Type:      Classify(ext),
		})

		if len(batch) >= c.batchSize {
			if err := flush(); err != nil {
				return 0, err
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, &StorageError{Op: "commit", Err: err}
	}
	committed = true

	return driveID, nil
}

func createDrive(ctx context.Context, tx *sql.Tx, d models.Drive) (int64, error) {
	res, err := tx.ExecContext(ctx, `
        INSERT INTO drives(name, date_scanned, total_files, total_size)
        VALUES (?, ?, ?, ?)
    `, d.Name, d.DateScanned.Format(time.RFC3339), d.TotalFiles, d.TotalSize)
	if err != nil {
		return 0, &StorageError{Op: "insert drive", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert drive", Err: err}
	}
	return id, nil
}

func bulkInsertFiles(ctx context.Context, stmt *sql.Stmt, files []models.FileItem) error {
	for _, f := range files {
		// name_lower/path_lower are folded here because SQLite's lower()
		// only handles ASCII; Go's ToLower also folds accented letters.
		_, err := stmt.ExecContext(ctx, f.DriveID, f.DriveName, f.Name, f.Path, f.Size, f.Extension, f.Type,
			strings.ToLower(f.Name), strings.ToLower(f.Path))
		if err != nil {
			return &StorageError{Op: "insert file", Err: err}
		}
	}
	return nil
}
