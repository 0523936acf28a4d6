package models

import "time"

// Type categories a cataloged file is classified into, derived from its
// extension. Unknown extensions fall back to TypeOutros.
const (
	TypeImagem     = "imagem"
	TypeVideo      = "video"
	TypeAudio      = "audio"
	TypeDocumento  = "documento"
	TypeArquivo    = "arquivo"
	TypeExecutavel = "executavel"
	TypeCodigo     = "codigo"
	TypeOutros     = "outros"
)

// Drive is the summary record of one cataloging run. Totals are fixed at
// ingestion time and always match the file rows referencing the drive.
type Drive struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateScanned time.Time `json:"dateScanned"`
	TotalFiles  int64     `json:"totalFiles"`
	TotalSize   int64     `json:"totalSize"`
}

// FileItem is one cataloged file. DriveName is denormalized onto the row so
// search results render without a join.
type FileItem struct {
	ID        int64  `json:"id"`
	DriveID   int64  `json:"driveId"`
	DriveName string `json:"driveName"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
	Extension string `json:"extension"`
	Type      string `json:"type"`
}

// FileEntry is one element of the flat listing produced by a folder
// selection. Path is relative to the selected root and keeps the folder
// segments as plain string prefixes.
type FileEntry struct {
	Name string
	Path string
	Size int64
}
