package webapp

import (
	"log"
	"net/http"
	"strconv"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

type searchResponse struct {
	Items      []models.FileItem `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

func (webapp *WebApp) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := &app.FileFilter{
			Query: q.Get("q"),
			Type:  q.Get("type"),
		}
		if v := q.Get("drive"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid drive id")
				return
			}
			filter.DriveID = id
		}
		if v := q.Get("min_size"); v != "" {
			size, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid min_size")
				return
			}
			filter.MinSize = size
		}

		page := 1
		if v := q.Get("page"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil || p < 1 {
				writeError(w, http.StatusBadRequest, "invalid page")
				return
			}
			page = p
		}

		files, err := webapp.Catalog.QueryFiles(r.Context(), filter)
		if err != nil {
			log.Printf("Search failed: %v", err)
			writeError(w, http.StatusInternalServerError, "search failed")
			return
		}

		pageSize := webapp.pageSize()
		items := app.Paginate(files, page, pageSize)
		if items == nil {
			items = []models.FileItem{}
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Items:      items,
			Total:      len(files),
			Page:       page,
			PageSize:   pageSize,
			TotalPages: (len(files) + pageSize - 1) / pageSize,
		})
	}
}
