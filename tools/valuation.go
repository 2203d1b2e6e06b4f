package tools

import (
	"context"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/property"
	"github.com/yourorg/property-api/rentcast"
	"github.com/yourorg/property-api/report"
)

// ValuationFetcher is the adapter side of the valuation tool.
type ValuationFetcher interface {
	FetchValuation(ctx context.Context, address string, hints rentcast.ValuationHints) (property.Valuation, error)
}

// ValuationTool fetches an AVM estimate with comparables and renders the
// valuation report. The four hints are optional; present ones are forwarded
// to the provider unchanged.
type ValuationTool struct {
	fetcher ValuationFetcher
}

func NewValuation(f ValuationFetcher) *ValuationTool {
	return &ValuationTool{fetcher: f}
}

func (t *ValuationTool) Name() string { return "property_valuation" }

func (t *ValuationTool) Description() string {
	return "Get a property valuation estimate and comparable properties for a given address"
}

func (t *ValuationTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"address": map[string]any{
				"type":        "string",
				"description": "The full address of the property to get valuation for",
			},
			"property_type": map[string]any{
				"type":        "string",
				"description": "Type of property (Single Family, Condo, etc.)",
			},
			"bedrooms": map[string]any{
				"type":        "number",
				"description": "Number of bedrooms in the property",
			},
			"bathrooms": map[string]any{
				"type":        "number",
				"description": "Number of bathrooms in the property",
			},
			"square_footage": map[string]any{
				"type":        "number",
				"description": "Total square footage of the property",
			},
		},
		"required": []string{"address"},
	}
}

func (t *ValuationTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	address, _ := args["address"].(string)

	var hints rentcast.ValuationHints
	if v, ok := args["property_type"].(string); ok && v != "" {
		hints.PropertyType = v
	}
	// JSON numbers arrive as float64; zero is a legitimate hint value, so
	// presence is keyed on the argument existing at all.
	if v, ok := args["bedrooms"].(float64); ok {
		beds := int(v)
		hints.Bedrooms = &beds
	}
	if v, ok := args["bathrooms"].(float64); ok {
		baths := v
		hints.Bathrooms = &baths
	}
	if v, ok := args["square_footage"].(float64); ok {
		sqft := int(v)
		hints.SquareFootage = &sqft
	}

	val, err := t.fetcher.FetchValuation(ctx, address, hints)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "No property found for address: " + address, nil
		}
		return "", err
	}
	return report.ValuationReport(val), nil
}
