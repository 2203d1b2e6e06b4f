package rentcast

// propertyResult is one element of the /v1/properties array. Rentcast nulls
// decode to zero values; the mappers treat zero as "unknown or none
// reported".
type propertyResult struct {
	ID               string                   `json:"id"`
	FormattedAddress string                   `json:"formattedAddress"`
	PropertyType     string                   `json:"propertyType"`
	Bedrooms         int                      `json:"bedrooms"`
	Bathrooms        float64                  `json:"bathrooms"`
	SquareFootage    int                      `json:"squareFootage"`
	YearBuilt        int                      `json:"yearBuilt"`
	LotSize          float64                  `json:"lotSize"`
	Valuation        float64                  `json:"valuation"`
	TaxAssessments   map[string]taxAssessment `json:"taxAssessments"`
	History          map[string]historyEntry  `json:"history"`
	Images           []string                 `json:"images"`
}

type taxAssessment struct {
	Value float64 `json:"value"`
}

type historyEntry struct {
	Event string  `json:"event"`
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// avmResponse is the typed schema for /v1/avm/value. Range bounds come back
// as-is, in whatever order the provider chose.
type avmResponse struct {
	Price          float64         `json:"price"`
	PriceRangeLow  float64         `json:"priceRangeLow"`
	PriceRangeHigh float64         `json:"priceRangeHigh"`
	Comparables    []avmComparable `json:"comparables"`
}

type avmComparable struct {
	FormattedAddress string  `json:"formattedAddress"`
	PropertyType     string  `json:"propertyType"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        float64 `json:"bathrooms"`
	SquareFootage    int     `json:"squareFootage"`
	YearBuilt        int     `json:"yearBuilt"`
	Price            float64 `json:"price"`
	ListingType      string  `json:"listingType"`
	DaysOnMarket     int     `json:"daysOnMarket"`
	Distance         float64 `json:"distance"`
}
