package webapp

import (
	"encoding/json"
	"net/http"

	"github.com/isaac-pipcode/Cat-logo-de-HDs/ai"
	"github.com/isaac-pipcode/Cat-logo-de-HDs/app"
)

type translateRequest struct {
	Text string `json:"text"`
}

// translateQuery converts a natural-language search into structured
// parameters. A failed or unconfigured translation answers null so the
// client keeps its literal filter state.
func (webapp *WebApp) translateQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		var params *ai.SearchParams
		if webapp.Assistant != nil {
			params = webapp.Assistant.TranslateQuery(r.Context(), req.Text)
		}
		writeJSON(w, http.StatusOK, params)
	}
}

type organizeRequest struct {
	DriveID int64 `json:"driveId"`
}

func (webapp *WebApp) suggestOrganization() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req organizeRequest
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&req)
		}

		files, err := webapp.Catalog.QueryFiles(r.Context(), &app.FileFilter{DriveID: req.DriveID})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to sample files")
			return
		}

		advice := ai.FallbackAdvice
		if webapp.Assistant != nil {
			sample := ai.SampleDescriptors(files, 50)
			advice = webapp.Assistant.SuggestOrganization(r.Context(), sample)
		}
		writeJSON(w, http.StatusOK, map[string]string{"advice": advice})
	}
}
