package webapp

import (
	"log"
	"net/http"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"
)

type statsResponse struct {
	ByType  []models.TypeUsage  `json:"byType"`
	ByDrive []models.DriveUsage `json:"byDrive"`
}

func (webapp *WebApp) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		byType, err := webapp.Catalog.UsageByType(r.Context())
		if err != nil {
			log.Printf("Failed to aggregate by type: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}
		byDrive, err := webapp.Catalog.UsageByDrive(r.Context())
		if err != nil {
			log.Printf("Failed to aggregate by drive: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to compute stats")
			return
		}

		if byType == nil {
			byType = []models.TypeUsage{}
		}
		if byDrive == nil {
			byDrive = []models.DriveUsage{}
		}
		writeJSON(w, http.StatusOK, statsResponse{ByType: byType, ByDrive: byDrive})
	}
}
