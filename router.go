package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	httpapi "github.com/yourorg/property-api/http"
	"github.com/yourorg/property-api/internal/httpx"
	"github.com/yourorg/property-api/internal/logger"
	"github.com/yourorg/property-api/internal/observability"
	"github.com/yourorg/property-api/tools"
)

type Deps struct {
	Attom    httpapi.Fetcher
	Rentcast httpapi.Fetcher
	Realty   httpapi.Fetcher
	AVM      httpapi.ValuationFetcher
	Registry *tools.Registry
	Log      *logger.Logger
}

func BuildRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(httpx.RequestID)
	r.Use(httpx.AccessLog(d.Log))
	r.Use(httprate.LimitByIP(100, 1*time.Minute)) // protect upstream quota
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"ok":true}`)) })
	r.Handle("/metrics", observability.Handler())

	httpapi.RegisterProperty(r, httpapi.PropertyDeps{Attom: d.Attom, Rentcast: d.Rentcast, Realty: d.Realty})
	httpapi.RegisterValuation(r, httpapi.ValuationDeps{Rentcast: d.AVM})
	httpapi.RegisterReport(r)
	httpapi.RegisterTools(r, httpapi.ToolsDeps{Registry: d.Registry})

	return r
}
