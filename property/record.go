package property

// Sentinels used by adapters and the report layer for absent values.
// Canonical string fields never carry a raw unformatted number or an
// empty string in their place.
const (
	NotAvailable = "Not available"
	Unknown      = "Unknown"
)

// Record is the canonical, provider-independent property shape. Adapters map
// each vendor payload into this; numeric currency fields arrive already
// display-formatted. Zero means "unknown or none reported" for the numeric
// fields.
type Record struct {
	Address        string   `json:"address"`
	Bedrooms       int      `json:"bedrooms"`
	Bathrooms      float64  `json:"bathrooms"` // combined total, or full + 0.5*half
	SquareFootage  int      `json:"square_footage"`
	YearBuilt      int      `json:"year_built"`
	LotSize        string   `json:"lot_size"` // value + unit, or "Not available"
	PropertyType   string   `json:"property_type"`
	EstimatedValue string   `json:"estimated_value"` // currency string or "Not available"
	LastSoldDate   string   `json:"last_sold_date,omitempty"`
	LastSoldPrice  string   `json:"last_sold_price,omitempty"` // currency string or "Unknown"
	Photos         []string `json:"photos"`                    // capped at 5 by adapters
	PropertyID     string   `json:"property_id"`               // opaque outside its provider
	Source         string   `json:"source"`                    // e.g. "attom"
}

// Comparable is one valuation-evidence property. Entries are read-only after
// construction; the report layer only aggregates over them.
type Comparable struct {
	Address       string  `json:"address"`
	PropertyType  string  `json:"property_type"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	SquareFootage int     `json:"square_footage"`
	YearBuilt     int     `json:"year_built"`
	Price         float64 `json:"price"`
	ListingType   string  `json:"listing_type"`
	DaysOnMarket  int     `json:"days_on_market"`
	Distance      float64 `json:"distance"` // miles from the subject
}

// Valuation is a provider AVM estimate for a subject property. Range bounds
// are passed through exactly as the provider returned them (low <= high is
// not guaranteed upstream and is not corrected here), and Comparables keep
// provider order.
type Valuation struct {
	Address        string       `json:"address"`
	EstimatedValue float64      `json:"estimated_value"`
	ValueRangeLow  float64      `json:"value_range_low"`
	ValueRangeHigh float64      `json:"value_range_high"`
	Comparables    []Comparable `json:"comparables"`
}
