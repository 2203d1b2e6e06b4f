// Package config loads the process-wide configuration once at startup.
// Adapters receive their credentials explicitly at construction; nothing in
// the request path reads the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is immutable after Load. A missing provider key is not a startup
// error: the adapter reports it on the first request that needs it.
type Config struct {
	AttomAPIKey    string
	RentcastAPIKey string
	RapidAPIKey    string

	Port int
	Env  string

	// ProviderRPS bounds outbound calls per provider to protect vendor quota.
	ProviderRPS float64
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		AttomAPIKey:    os.Getenv("ATTOM_API_KEY"),
		RentcastAPIKey: os.Getenv("RENTCAST_API_KEY"),
		RapidAPIKey:    os.Getenv("RAPIDAPI_KEY"),
		Port:           getInt("PORT", 4002),
		Env:            getEnv("APP_ENV", "development"),
		ProviderRPS:    getFloat("PROVIDER_RPS", 5),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return i
}

func getFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return d
	}
	return f
}
