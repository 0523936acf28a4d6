package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", webapp.search())
		r.Get("/drives", webapp.listDrives())
		r.Post("/drives", webapp.importDrive())
		r.Delete("/drives/{id}", webapp.deleteDrive())
		r.Get("/stats", webapp.stats())
		r.Post("/ai/translate", webapp.translateQuery())
		r.Post("/ai/organize", webapp.suggestOrganization())
	})

	return r
}
