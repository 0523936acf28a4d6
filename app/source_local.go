package app

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// ListFolder flattens the tree under root into file entries with
// slash-separated paths relative to root, the same shape a browser folder
// selection produces. Directories themselves are not listed; unreadable
// entries are skipped.
func ListFolder(root string) ([]models.FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ValidationError{Field: "root", Reason: "not a directory"}
	}

	var entries []models.FileEntry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		entries = append(entries, models.FileEntry{
			Name: d.Name(),
			Path: filepath.ToSlash(rel),
			Size: fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
