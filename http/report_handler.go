package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/property-api/property"
	"github.com/yourorg/property-api/report"
)

type ReportRequest struct {
	Records   []property.Record   `json:"records"`
	Valuation *property.Valuation `json:"valuation,omitempty"`
}

// RegisterReport mounts the pure formatting endpoint. No upstream calls
// happen here; the caller supplies records it already fetched.
func RegisterReport(r chi.Router) {
	r.Post("/report", func(w http.ResponseWriter, req *http.Request) {
		var body ReportRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		text := report.FormatReport(body.Records, body.Valuation)
		render.JSON(w, req, map[string]any{"ok": true, "report": text})
	})
}
