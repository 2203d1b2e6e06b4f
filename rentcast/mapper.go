package rentcast

import (
	"strconv"

	"github.com/yourorg/property-api/property"
)

const maxPhotos = 5

func mapProperty(p propertyResult) property.Record {
	lotSize := property.NotAvailable
	if p.LotSize > 0 {
		lotSize = strconv.FormatFloat(p.LotSize, 'f', -1, 64) + " sq ft"
	}

	propType := p.PropertyType
	if propType == "" {
		propType = property.Unknown
	}

	// Prefer the latest tax assessment; fall back to the valuation field.
	estimatedNum := latestAssessment(p.TaxAssessments)
	if estimatedNum == 0 {
		estimatedNum = p.Valuation
	}
	estimated := property.NotAvailable
	if estimatedNum > 0 {
		estimated = property.USD(estimatedNum)
	}

	soldDate, soldPriceNum := lastSale(p.History)
	soldPrice := property.Unknown
	if soldPriceNum > 0 {
		soldPrice = property.USD(soldPriceNum)
	}

	photos := make([]string, 0, maxPhotos)
	for _, img := range p.Images {
		if img == "" {
			continue
		}
		photos = append(photos, img)
		if len(photos) == maxPhotos {
			break
		}
	}

	return property.Record{
		Address:        p.FormattedAddress,
		Bedrooms:       clampInt(p.Bedrooms),
		Bathrooms:      clampFloat(p.Bathrooms),
		SquareFootage:  clampInt(p.SquareFootage),
		YearBuilt:      clampInt(p.YearBuilt),
		LotSize:        lotSize,
		PropertyType:   propType,
		EstimatedValue: estimated,
		LastSoldDate:   soldDate,
		LastSoldPrice:  soldPrice,
		Photos:         photos,
		PropertyID:     p.ID,
		Source:         providerName,
	}
}

// latestAssessment picks the value for the most recent numeric year key.
func latestAssessment(assessments map[string]taxAssessment) float64 {
	latest := 0
	var value float64
	for year, a := range assessments {
		y, err := strconv.Atoi(year)
		if err != nil {
			continue
		}
		if y > latest {
			latest = y
			value = a.Value
		}
	}
	return value
}

// lastSale finds the most recent history entry whose event is "Sale" and
// returns its human-readable date and price. Entries are keyed by date
// string, so the lexicographic maximum is the most recent.
func lastSale(history map[string]historyEntry) (string, float64) {
	var bestKey string
	for key, h := range history {
		if h.Event != "Sale" {
			continue
		}
		if key > bestKey {
			bestKey = key
		}
	}
	if bestKey == "" {
		return "", 0
	}
	entry := history[bestKey]
	date := property.Unknown
	if entry.Date != "" {
		date = property.HumanDate(entry.Date)
	}
	return date, entry.Price
}

func mapValuation(address string, resp avmResponse) property.Valuation {
	comps := make([]property.Comparable, 0, len(resp.Comparables))
	for _, c := range resp.Comparables {
		compAddress := c.FormattedAddress
		if compAddress == "" {
			compAddress = property.Unknown
		}
		compType := c.PropertyType
		if compType == "" {
			compType = property.Unknown
		}
		listingType := c.ListingType
		if listingType == "" {
			listingType = property.Unknown
		}
		comps = append(comps, property.Comparable{
			Address:       compAddress,
			PropertyType:  compType,
			Bedrooms:      c.Bedrooms,
			Bathrooms:     c.Bathrooms,
			SquareFootage: c.SquareFootage,
			YearBuilt:     c.YearBuilt,
			Price:         c.Price,
			ListingType:   listingType,
			DaysOnMarket:  c.DaysOnMarket,
			Distance:      c.Distance,
		})
	}
	// The response omits the subject address, so the input address stands in.
	return property.Valuation{
		Address:        address,
		EstimatedValue: resp.Price,
		ValueRangeLow:  resp.PriceRangeLow,
		ValueRangeHigh: resp.PriceRangeHigh,
		Comparables:    comps,
	}
}

func clampInt(v int) int {
	if v > 0 {
		return v
	}
	return 0
}

func clampFloat(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}
