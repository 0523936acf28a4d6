package models

// TypeUsage aggregates byte usage for one type category.
type TypeUsage struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
	Size  int64  `json:"size"`
}

// DriveUsage is a reporting projection of one Drive summary row.
type DriveUsage struct {
	Name        string  `json:"name"`
	TotalSizeGB float64 `json:"totalSizeGB"`
	TotalFiles  int64   `json:"totalFiles"`
}
