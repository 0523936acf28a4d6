package app

import (
	"context"
	"log"
)

// Run loads the configuration, flattens the selected folder and catalogs
// it under the given drive name.
func Run(configPath, driveName, folder string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	catalog, err := OpenCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	defer catalog.Close()

	entries, err := ListFolder(folder)
	if err != nil {
		return err
	}

	id, err := catalog.Ingest(context.Background(), driveName, entries)
	if err != nil {
		return err
	}

	log.Printf("Drive %q cataloged with id %d", driveName, id)
	return nil
}
