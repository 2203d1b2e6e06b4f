package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/property"
)

// Fetcher is what a provider client exposes to the HTTP layer.
type Fetcher interface {
	FetchProperty(ctx context.Context, address string) (property.Record, error)
}

type PropertyDeps struct {
	Attom    Fetcher
	Rentcast Fetcher
	Realty   Fetcher
}

type PropertyRequest struct {
	Address  string `json:"address"`
	Provider string `json:"provider,omitempty"` // attom (default), rentcast, realty
}

func RegisterProperty(r chi.Router, d PropertyDeps) {
	// POST: JSON body
	r.Post("/property", func(w http.ResponseWriter, req *http.Request) {
		var body PropertyRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_json", "detail": err.Error()})
			return
		}
		handlePropertyRequest(w, req, d, body)
	})

	// GET: query params (compatibility)
	r.Get("/property", func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		body := PropertyRequest{
			Address:  q.Get("address"),
			Provider: q.Get("provider"),
		}
		handlePropertyRequest(w, req, d, body)
	})
}

func handlePropertyRequest(w http.ResponseWriter, req *http.Request, d PropertyDeps, body PropertyRequest) {
	fetcher, ok := pickFetcher(d, body.Provider)
	if !ok {
		render.Status(req, http.StatusBadRequest)
		render.JSON(w, req, map[string]any{"error": "unknown_provider", "detail": body.Provider})
		return
	}
	rec, err := fetcher.FetchProperty(req.Context(), body.Address)
	if err != nil {
		writeAdapterError(w, req, err)
		return
	}
	render.JSON(w, req, map[string]any{"ok": true, "property": rec})
}

func pickFetcher(d PropertyDeps, provider string) (Fetcher, bool) {
	switch provider {
	case "", "attom":
		return d.Attom, d.Attom != nil
	case "rentcast":
		return d.Rentcast, d.Rentcast != nil
	case "realty":
		return d.Realty, d.Realty != nil
	default:
		return nil, false
	}
}

// writeAdapterError maps the adapter error taxonomy onto response codes.
// Detail text comes from the error itself, which never carries credentials.
func writeAdapterError(w http.ResponseWriter, req *http.Request, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		render.Status(req, e.HTTPStatus())
		render.JSON(w, req, map[string]any{"error": kindName(e.Kind), "detail": e.Error()})
		return
	}
	render.Status(req, http.StatusInternalServerError)
	render.JSON(w, req, map[string]any{"error": "internal", "detail": err.Error()})
}

func kindName(k apperr.Kind) string {
	switch k {
	case apperr.KindAuth:
		return "auth_error"
	case apperr.KindNotFound:
		return "not_found"
	case apperr.KindUpstream:
		return "upstream_error"
	case apperr.KindValidation:
		return "validation_error"
	default:
		return "internal"
	}
}
