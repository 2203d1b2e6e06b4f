package main

import (
	"fmt"
	"net/http"

	"github.com/yourorg/property-api/attom"
	"github.com/yourorg/property-api/internal/config"
	"github.com/yourorg/property-api/internal/logger"
	"github.com/yourorg/property-api/realty"
	"github.com/yourorg/property-api/rentcast"
	"github.com/yourorg/property-api/tools"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)

	attomClient := attom.NewClient(cfg.AttomAPIKey, cfg.ProviderRPS, log)
	rentcastClient := rentcast.NewClient(cfg.RentcastAPIKey, cfg.ProviderRPS, log)
	realtyClient := realty.NewClient(cfg.RapidAPIKey, cfg.ProviderRPS, log)

	registry := tools.NewRegistry()
	registry.Register(tools.NewPropertyDetails(attomClient))
	registry.Register(tools.NewPropertyDetailsRentcast(rentcastClient))
	registry.Register(tools.NewPropertyDetailsRealty(realtyClient))
	registry.Register(tools.NewValuation(rentcastClient))

	router := BuildRouter(Deps{
		Attom:    attomClient,
		Rentcast: rentcastClient,
		Realty:   realtyClient,
		AVM:      rentcastClient,
		Registry: registry,
		Log:      log,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("property-api listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("server stopped", "error", err)
	}
}
