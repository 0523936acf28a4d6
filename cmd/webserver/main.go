package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/ai"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
	webapp "github.com/isaac-pipcode/Cat-logo-de-HDs/web/run"
)

func main() {
	configPath := flag.String("config", "catalogo.yaml", "Path to configuration file")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	catalog, err := app.OpenCatalog(cfg.Catalog)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer catalog.Close()

	assistant, err := ai.NewAssistant(context.Background(), cfg.AI.Model)
	if err != nil {
		log.Printf("AI assistant disabled: %v", err)
	}

	web := webapp.WebApp{
		Catalog:   catalog,
		Assistant: assistant,
		AppConfig: cfg,
	}

	addr := web.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, web.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
