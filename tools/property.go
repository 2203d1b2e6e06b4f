package tools

import (
	"context"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/property"
	"github.com/yourorg/property-api/report"
)

// PropertyFetcher is the adapter side of a property-details tool. All three
// provider clients satisfy it.
type PropertyFetcher interface {
	FetchProperty(ctx context.Context, address string) (property.Record, error)
}

// PropertyDetailsTool looks up one property by address through a single
// provider and returns the narrative description.
type PropertyDetailsTool struct {
	name        string
	description string
	fetcher     PropertyFetcher
}

// NewPropertyDetails builds the tool for the ATTOM-backed lookup.
func NewPropertyDetails(f PropertyFetcher) *PropertyDetailsTool {
	return &PropertyDetailsTool{
		name:        "property_details",
		description: "Get detailed information for a property based on its address",
		fetcher:     f,
	}
}

// NewPropertyDetailsRentcast builds the tool for the Rentcast-backed lookup.
func NewPropertyDetailsRentcast(f PropertyFetcher) *PropertyDetailsTool {
	return &PropertyDetailsTool{
		name:        "property_details_rentcast",
		description: "Get property details for a given address using the Rentcast API",
		fetcher:     f,
	}
}

// NewPropertyDetailsRealty builds the tool for the RealtyInUS-backed lookup.
func NewPropertyDetailsRealty(f PropertyFetcher) *PropertyDetailsTool {
	return &PropertyDetailsTool{
		name:        "property_details_realty",
		description: "Get property details for a given address using the RealtyInUS API",
		fetcher:     f,
	}
}

func (t *PropertyDetailsTool) Name() string        { return t.name }
func (t *PropertyDetailsTool) Description() string { return t.description }

func (t *PropertyDetailsTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"address": map[string]any{
				"type":        "string",
				"description": "The full address of the property to get details for",
			},
		},
		"required": []string{"address"},
	}
}

func (t *PropertyDetailsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	address, _ := args["address"].(string)
	rec, err := t.fetcher.FetchProperty(ctx, address)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "No property found for address: " + address, nil
		}
		return "", err
	}
	return report.Describe(rec), nil
}
