package app

import (
	"context"
	"strings"
	"time"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// FileFilter narrows a catalog query. All set filters are conjunctive;
// zero values mean "match all" for that dimension.
type FileFilter struct {
	Query   string // case-insensitive substring over name OR path
	Type    string // type category equality
	DriveID int64  // drive equality, 0 = all drives
	MinSize int64  // minimum size in bytes
}

// QueryFiles returns all records matching the filter, newest first. Drive
// and type equality are pushed down to the indexed columns; the substring
// match is a LIKE scan, O(n) over the rows left after those filters.
func (c *Catalog) QueryFiles(ctx context.Context, filter *FileFilter) ([]models.FileItem, error) {
	sqlQuery := `
        SELECT id, drive_id, drive_name, name, path, size, ext, type
        FROM files`

	var conditions []string
	var args []any

	if filter != nil {
		if filter.DriveID > 0 {
			conditions = append(conditions, "drive_id = ?")
			args = append(args, filter.DriveID)
		}
		if filter.Type != "" {
			conditions = append(conditions, "type = ?")
			args = append(args, filter.Type)
		}
		if filter.MinSize > 0 {
			conditions = append(conditions, "size >= ?")
			args = append(args, filter.MinSize)
		}
		if filter.Query != "" {
			// Both sides are folded with Go's Unicode-aware ToLower: the
			// stored name_lower/path_lower columns at ingestion, the query
			// here. SQLite's own lower() is ASCII-only.
			like := "%" + escapeLike(strings.ToLower(filter.Query)) + "%"
			conditions = append(conditions, `(name_lower LIKE ? ESCAPE '\' OR path_lower LIKE ? ESCAPE '\')`)
			args = append(args, like, like)
		}
	}

	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY id DESC"

	rows, err := c.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, &StorageError{Op: "query files", Err: err}
	}
	defer rows.Close()

	var result []models.FileItem
	for rows.Next() {
		var f models.FileItem
		if err := rows.Scan(&f.ID, &f.DriveID, &f.DriveName, &f.Name, &f.Path, &f.Size, &f.Extension, &f.Type); err != nil {
			return nil, &StorageError{Op: "scan file", Err: err}
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query files", Err: err}
	}

	return result, nil
}

// ListDrives returns all drive summary rows, newest first.
func (c *Catalog) ListDrives(ctx context.Context) ([]models.Drive, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT id, name, date_scanned, total_files, total_size
        FROM drives
        ORDER BY id DESC`)
	if err != nil {
		return nil, &StorageError{Op: "list drives", Err: err}
	}
	defer rows.Close()

	var result []models.Drive
	for rows.Next() {
		var d models.Drive
		var scanned string
		if err := rows.Scan(&d.ID, &d.Name, &scanned, &d.TotalFiles, &d.TotalSize); err != nil {
			return nil, &StorageError{Op: "scan drive", Err: err}
		}
		d.DateScanned, _ = time.Parse(time.RFC3339, scanned)
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list drives", Err: err}
	}

	return result, nil
}

// DeleteDrive removes a drive summary row and every file row referencing
// it in one transaction, so readers never observe orphaned files.
func (c *Catalog) DeleteDrive(ctx context.Context, id int64) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "begin", Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM files WHERE drive_id = ?`, id); err != nil {
		return &StorageError{Op: "delete files", Err: err}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM drives WHERE id = ?`, id); err != nil {
		return &StorageError{Op: "delete drive", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "commit", Err: err}
	}
	committed = true

	c.notifier.Notify(CollectionDrives, CollectionFiles)
	return nil
}

// Paginate slices a filtered result set. Pages are 1-based; a page past
// the end returns an empty slice.
func Paginate(files []models.FileItem, page, pageSize int) []models.FileItem {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(files) {
		return nil
	}
	end := start + pageSize
	if end > len(files) {
		end = len(files)
	}
	return files[start:end]
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
