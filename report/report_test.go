package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourorg/property-api/property"
)

func sampleRecord() property.Record {
	return property.Record{
		Address:        "4529 Winona Ct, Denver, CO 80212",
		Bedrooms:       3,
		Bathrooms:      2.5,
		SquareFootage:  1748,
		YearBuilt:      1953,
		LotSize:        "6250 sq ft",
		PropertyType:   "Single Family Residence",
		EstimatedValue: "$621,000",
		LastSoldDate:   "August 2, 2019",
		LastSoldPrice:  "$575,000",
		Photos:         []string{},
		PropertyID:     "184713191",
		Source:         "attom",
	}
}

func TestDescribe(t *testing.T) {
	got := describeAt(sampleRecord(), 2026)

	assert.Contains(t, got, "I found a classic single family residence located at 4529 Winona Ct, Denver, CO 80212.")
	assert.Contains(t, got, "3 bedrooms and 2 and a half bathrooms")
	assert.Contains(t, got, "approximately 1,748 square feet")
	assert.Contains(t, got, "Built in 1953, ")
	assert.Contains(t, got, "sits on a 6250 sq ft lot")
	assert.Contains(t, got, "The estimated current value of this property is $621,000.")
	assert.Contains(t, got, "The property was last sold on August 2, 2019 for $575,000.")
}

func TestDescribeUnknownYear(t *testing.T) {
	rec := sampleRecord()
	rec.YearBuilt = 0
	got := describeAt(rec, 2026)

	assert.Contains(t, got, "I found a single family residence located at")
	assert.NotContains(t, got, "Built in")
	assert.NotContains(t, got, " 0,")
}

func TestDescribeNoSaleHistory(t *testing.T) {
	rec := sampleRecord()
	rec.LastSoldDate = ""
	rec.LastSoldPrice = property.Unknown
	got := describeAt(rec, 2026)

	assert.NotContains(t, got, "last sold")
}

func TestDescribeSingularCounts(t *testing.T) {
	rec := sampleRecord()
	rec.Bedrooms = 1
	rec.Bathrooms = 1
	got := describeAt(rec, 2026)

	assert.Contains(t, got, "1 bedroom and 1 bathroom with")
	assert.NotContains(t, got, "1 bedrooms")
}

func TestDescribeIdempotent(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, describeAt(rec, 2026), describeAt(rec, 2026))
}

func TestAgeArticle(t *testing.T) {
	const year = 2026
	tests := []struct {
		built int
		want  string
	}{
		{0, "a"},
		{-1, "a"},
		{2024, "a brand new"},
		{2022, "a brand new"}, // age 4
		{2021, "a newer"},     // age 5
		{2017, "a newer"},     // age 9
		{2016, "a well-maintained"},
		{2007, "a well-maintained"}, // age 19
		{2006, "an established"},    // age 20
		{1987, "an established"},    // age 39
		{1986, "a classic"},         // age 40
		{1952, "a classic"},         // age 74
		{1951, "a historic"},        // age 75
		{1890, "a historic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ageArticle(tt.built, year), "built %d", tt.built)
	}
}

func TestBathText(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{2, "2"},
		{2.5, "2 and a half"},
		{0.5, "0 and a half"},
		{1.75, "1.75"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bathText(tt.in))
	}
}

func TestMultiSource(t *testing.T) {
	a := sampleRecord()
	b := sampleRecord()
	b.Bedrooms = 3
	b.Source = "rentcast"
	c := sampleRecord()
	c.Bedrooms = 4
	c.YearBuilt = 0
	c.Source = "realty"

	got := MultiSource([]property.Record{a, b, c})

	assert.Contains(t, got, "Property report for 4529 Winona Ct, Denver, CO 80212 (3 sources):")
	// Every source's value shows up distinctly and in input order, even when
	// two of them agree.
	assert.Contains(t, got, "Bedrooms: 3 according to the first source, 3 according to the second source, 4 according to the third source")
	assert.Contains(t, got, "Year built: 1953 according to the first source, 1953 according to the second source, Unknown according to the third source")
	assert.Contains(t, got, "Estimated value: $621,000 according to the first source")
}

func TestFormatReport(t *testing.T) {
	one := []property.Record{sampleRecord()}

	t.Run("single record reads as narrative", func(t *testing.T) {
		got := FormatReport(one, nil)
		assert.Contains(t, got, "I found")
		assert.NotContains(t, got, "sources):")
	})

	t.Run("several records read as disclosure", func(t *testing.T) {
		got := FormatReport([]property.Record{sampleRecord(), sampleRecord()}, nil)
		assert.Contains(t, got, "(2 sources):")
	})

	t.Run("valuation appends a section", func(t *testing.T) {
		v := property.Valuation{Address: "4529 Winona Ct", EstimatedValue: 621000}
		got := FormatReport(one, &v)
		assert.Contains(t, got, "I found")
		assert.Contains(t, got, "PROPERTY VALUATION REPORT:")
	})

	t.Run("nothing at all", func(t *testing.T) {
		assert.Equal(t, "No property data available.", FormatReport(nil, nil))
	})

	t.Run("idempotent", func(t *testing.T) {
		v := property.Valuation{EstimatedValue: 100}
		assert.Equal(t, FormatReport(one, &v), FormatReport(one, &v))
	})
}

// Reports never leak serialization artifacts into user-facing text.
func TestNoPlaceholderLeaks(t *testing.T) {
	records := []property.Record{sampleRecord(), {Address: "1 Bare St", Source: "rentcast", LastSoldPrice: property.Unknown}}
	v := property.Valuation{Address: "1 Bare St", Comparables: []property.Comparable{{Address: "2 Bare St"}}}
	got := FormatReport(records, &v)

	for _, bad := range []string{"None", "null", "<nil>", "%!"} {
		assert.False(t, strings.Contains(got, bad), "report contains %q:\n%s", bad, got)
	}
}
