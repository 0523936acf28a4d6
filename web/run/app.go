package webapp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/ai"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

// WebApp serves the catalog JSON API. Assistant may be nil when no Gemini
// key is configured; the AI endpoints then degrade to neutral responses.
type WebApp struct {
	Catalog   *app.Catalog
	Assistant *ai.Assistant
	AppConfig *models.AppConfig
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}

func (webapp *WebApp) pageSize() int {
	if webapp.AppConfig != nil && webapp.AppConfig.Catalog.PageSize > 0 {
		return webapp.AppConfig.Catalog.PageSize
	}
	return app.DefaultPageSize
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
