package app

import (
	"context"
	"math"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// UsageByType sums cataloged bytes per type category, largest first.
func (c *Catalog) UsageByType(ctx context.Context) ([]models.TypeUsage, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT type, COUNT(*), COALESCE(SUM(size), 0)
        FROM files
        GROUP BY type
        ORDER BY SUM(size) DESC`)
	if err != nil {
		return nil, &StorageError{Op: "usage by type", Err: err}
	}
	defer rows.Close()

	var result []models.TypeUsage
	for rows.Next() {
		var u models.TypeUsage
		if err := rows.Scan(&u.Type, &u.Count, &u.Size); err != nil {
			return nil, &StorageError{Op: "usage by type", Err: err}
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

// UsageByDrive projects the drive summary rows for reporting. It trusts
// the stored totals and never recounts file rows.
func (c *Catalog) UsageByDrive(ctx context.Context) ([]models.DriveUsage, error) {
	drives, err := c.ListDrives(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateByDrive(drives), nil
}

// AggregateByType sums byte size per type category over an in-memory
// result set in one pass.
func AggregateByType(files []models.FileItem) map[string]int64 {
	usage := make(map[string]int64)
	for _, f := range files {
		usage[f.Type] += f.Size
	}
	return usage
}

// AggregateByDrive converts drive summaries into reporting rows with sizes
// in gigabytes, rounded to two decimals.
func AggregateByDrive(drives []models.Drive) []models.DriveUsage {
	result := make([]models.DriveUsage, 0, len(drives))
	for _, d := range drives {
		gb := float64(d.TotalSize) / (1024 * 1024 * 1024)
		result = append(result, models.DriveUsage{
			Name:        d.Name,
			TotalSizeGB: math.Round(gb*100) / 100,
			TotalFiles:  d.TotalFiles,
		})
	}
	return result
}
