package main

import (
	"flag"
	"log"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
)

func main() {
	configPath := flag.String("config", "catalogo.yaml", "Path to configuration file")
	driveName := flag.String("name", "", "Drive label for this cataloging run")
	folder := flag.String("folder", "", "Folder to catalog")
	flag.Parse()

	if err := app.Run(*configPath, *driveName, *folder); err != nil {
		log.Fatalf("error: %v", err)
	}
}
