// Package report renders canonical property records and valuations into the
// human-readable text handed back to the conversational runtime. Everything
// here is a pure function over its inputs: no I/O, no hidden state, and no
// failures. Absent values render as their sentinels.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/yourorg/property-api/property"
)

// FormatReport combines one-to-many records for the same address, plus an
// optional valuation, into a single report. One record yields the narrative
// description; several yield the per-source disclosure. Structural
// attributes from different providers are never averaged or reconciled.
func FormatReport(records []property.Record, valuation *property.Valuation) string {
	var sections []string
	switch {
	case len(records) == 1:
		sections = append(sections, Describe(records[0]))
	case len(records) > 1:
		sections = append(sections, MultiSource(records))
	}
	if valuation != nil {
		sections = append(sections, ValuationReport(*valuation))
	}
	if len(sections) == 0 {
		return "No property data available."
	}
	return strings.Join(sections, "\n\n")
}

// Describe renders a single record as a narrative description.
func Describe(rec property.Record) string {
	return describeAt(rec, time.Now().Year())
}

func describeAt(rec property.Record, currentYear int) string {
	article := ageArticle(rec.YearBuilt, currentYear)

	builtClause := ""
	if rec.YearBuilt > 0 {
		builtClause = "Built in " + strconv.Itoa(rec.YearBuilt) + ", "
	}

	soldInfo := ""
	if rec.LastSoldDate != "" && rec.LastSoldPrice != "" && rec.LastSoldPrice != property.Unknown {
		soldInfo = fmt.Sprintf(" The property was last sold on %s for %s.", rec.LastSoldDate, rec.LastSoldPrice)
	}

	return fmt.Sprintf(
		"I found %s %s located at %s.\n\n"+
			"This home features %d bedroom%s and %s bathroom%s with approximately %s square feet of living space. "+
			"%sThe property sits on a %s lot.\n\n"+
			"The estimated current value of this property is %s.%s",
		article, strings.ToLower(rec.PropertyType), rec.Address,
		rec.Bedrooms, plural(rec.Bedrooms != 1),
		bathText(rec.Bathrooms), plural(rec.Bathrooms != 1),
		property.Comma(int64(rec.SquareFootage)),
		builtClause, rec.LotSize,
		rec.EstimatedValue, soldInfo,
	)
}

// MultiSource renders records from several providers side by side. Each
// source's raw value appears distinctly, in input order; nothing is dropped,
// averaged, or silently reconciled.
func MultiSource(records []property.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Property report for %s (%d sources):\n", records[0].Address, len(records))

	writeRow := func(label string, value func(property.Record) string) {
		parts := make([]string, 0, len(records))
		for i, rec := range records {
			parts = append(parts, fmt.Sprintf("%s according to the %s source", value(rec), ordinal(i+1)))
		}
		fmt.Fprintf(&b, "\n%s: %s", label, strings.Join(parts, ", "))
	}

	writeRow("Bedrooms", func(r property.Record) string { return strconv.Itoa(r.Bedrooms) })
	writeRow("Bathrooms", func(r property.Record) string { return bathText(r.Bathrooms) })
	writeRow("Square footage", func(r property.Record) string { return property.Comma(int64(r.SquareFootage)) })
	writeRow("Year built", func(r property.Record) string {
		if r.YearBuilt == 0 {
			return property.Unknown
		}
		return strconv.Itoa(r.YearBuilt)
	})
	writeRow("Property type", func(r property.Record) string { return r.PropertyType })
	writeRow("Estimated value", func(r property.Record) string { return r.EstimatedValue })
	return b.String()
}

// ageArticle buckets the property's age into the adjective used by the
// narrative. An unknown build year gets the neutral article.
func ageArticle(yearBuilt, currentYear int) string {
	if yearBuilt <= 0 {
		return "a"
	}
	age := currentYear - yearBuilt
	switch {
	case age < 5:
		return "a brand new"
	case age < 10:
		return "a newer"
	case age < 20:
		return "a well-maintained"
	case age < 40:
		return "an established"
	case age < 75:
		return "a classic"
	default:
		return "a historic"
	}
}

// bathText renders a bathroom count: integers bare, half counts as
// "N and a half", anything else with its literal decimal value.
func bathText(v float64) string {
	whole := math.Trunc(v)
	switch {
	case v == whole:
		return strconv.Itoa(int(whole))
	case v == whole+0.5:
		return strconv.Itoa(int(whole)) + " and a half"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func plural(many bool) string {
	if many {
		return "s"
	}
	return ""
}

var ordinals = []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}

func ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return fmt.Sprintf("%dth", n)
}
