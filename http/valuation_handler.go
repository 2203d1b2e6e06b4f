package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/property-api/property"
	"github.com/yourorg/property-api/rentcast"
)

// ValuationFetcher is what the AVM client exposes to the HTTP layer.
type ValuationFetcher interface {
	FetchValuation(ctx context.Context, address string, hints rentcast.ValuationHints) (property.Valuation, error)
}

type ValuationDeps struct {
	Rentcast ValuationFetcher
}

type ValuationRequest struct {
	Address       string   `json:"address"`
	PropertyType  string   `json:"property_type,omitempty"`
	Bedrooms      *int     `json:"bedrooms,omitempty"`
	Bathrooms     *float64 `json:"bathrooms,omitempty"`
	SquareFootage *int     `json:"square_footage,omitempty"`
}

func RegisterValuation(r chi.Router, d ValuationDeps) {
	// POST: JSON body
	r.Post("/valuation", func(w http.ResponseWriter, req *http.Request) {
		var body ValuationRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		handleValuationRequest(w, req, d, body)
	})

	// GET: query params (compatibility)
	r.Get("/valuation", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		body := ValuationRequest{
			Address:      q.Get("address"),
			PropertyType: q.Get("property_type"),
		}
		if v := q.Get("bedrooms"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.Bedrooms = &i
			}
		}
		if v := q.Get("bathrooms"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				body.Bathrooms = &f
			}
		}
		if v := q.Get("square_footage"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				body.SquareFootage = &i
			}
		}
		handleValuationRequest(w, req, d, body)
	})
}

func handleValuationRequest(w http.ResponseWriter, req *http.Request, d ValuationDeps, body ValuationRequest) {
	hints := rentcast.ValuationHints{
		PropertyType:  body.PropertyType,
		Bedrooms:      body.Bedrooms,
		Bathrooms:     body.Bathrooms,
		SquareFootage: body.SquareFootage,
	}
	val, err := d.Rentcast.FetchValuation(req.Context(), body.Address, hints)
	if err != nil {
		writeAdapterError(w, req, err)
		return
	}
	render.JSON(w, req, map[string]any{"ok": true, "valuation": val})
}
