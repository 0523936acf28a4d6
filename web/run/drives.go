package webapp

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

func (webapp *WebApp) listDrives() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drives, err := webapp.Catalog.ListDrives(r.Context())
		if err != nil {
			log.Printf("Failed to list drives: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to list drives")
			return
		}
		if drives == nil {
			drives = []models.Drive{}
		}
		writeJSON(w, http.StatusOK, drives)
	}
}

type importRequest struct {
	Name   string `json:"name"`
	Folder string `json:"folder"`
}

// importDrive catalogs a server-local folder under the given drive name.
func (webapp *WebApp) importDrive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req importRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		entries, err := app.ListFolder(req.Folder)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot read folder: "+req.Folder)
			return
		}

		id, err := webapp.Catalog.Ingest(r.Context(), req.Name, entries)
		if err != nil {
			var verr *app.ValidationError
			if errors.As(err, &verr) {
				writeError(w, http.StatusBadRequest, verr.Error())
				return
			}
			log.Printf("Ingestion failed: %v", err)
			writeError(w, http.StatusInternalServerError, "ingestion failed")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"driveId":    id,
			"totalFiles": len(entries),
		})
	}
}

func (webapp *WebApp) deleteDrive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid drive id")
			return
		}

		if err := webapp.Catalog.DeleteDrive(r.Context(), id); err != nil {
			log.Printf("Failed to delete drive %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "failed to delete drive")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
