package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourorg/property-api/property"
)

// displayComps bounds the per-comparable detail blocks for readability; the
// market averages still run over the full list.
const displayComps = 5

// ValuationReport renders an AVM valuation. Every figure from the provider
// appears exactly as received; the only derived numbers are the three market
// averages, floor-truncated for display.
func ValuationReport(v property.Valuation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PROPERTY VALUATION REPORT:\n")
	fmt.Fprintf(&b, "• Address: %s\n", v.Address)
	fmt.Fprintf(&b, "• EXACT Estimated Value: %s\n", property.USD(v.EstimatedValue))
	fmt.Fprintf(&b, "• EXACT Value Range: %s to %s\n", property.USD(v.ValueRangeLow), property.USD(v.ValueRangeHigh))
	fmt.Fprintf(&b, "• Data Source: Rentcast AVM (Automated Valuation Model)\n")

	fmt.Fprintf(&b, "\nCOMPARABLE PROPERTIES (%d found):\n", len(v.Comparables))
	for i, comp := range v.Comparables {
		if i == displayComps {
			break
		}
		fmt.Fprintf(&b, "\nComparable #%d:\n", i+1)
		fmt.Fprintf(&b, "• Address: %s\n", comp.Address)
		fmt.Fprintf(&b, "• EXACT Price: %s\n", property.USD(comp.Price))
		fmt.Fprintf(&b, "• EXACT Details: %d bed, %s bath, %s sq ft\n",
			comp.Bedrooms, strconv.FormatFloat(comp.Bathrooms, 'f', -1, 64), property.Comma(int64(comp.SquareFootage)))
		fmt.Fprintf(&b, "• EXACT Year Built: %d\n", comp.YearBuilt)
		fmt.Fprintf(&b, "• EXACT Distance: %.2f miles\n", comp.Distance)
		fmt.Fprintf(&b, "• EXACT Days on Market: %d\n", comp.DaysOnMarket)
	}

	avgPrice, avgPerSqft, avgDays := marketAverages(v.Comparables)
	fmt.Fprintf(&b, "\nMARKET ANALYSIS SUMMARY (EXACT VALUES):\n")
	fmt.Fprintf(&b, "• EXACT Average Comparable Price: %s\n", property.USD(avgPrice))
	fmt.Fprintf(&b, "• EXACT Average Price per Square Foot: $%d\n", int64(avgPerSqft))
	fmt.Fprintf(&b, "• EXACT Average Days on Market: %d days\n", int64(avgDays))
	fmt.Fprintf(&b, "• EXACT Number of Comparable Properties: %d", len(v.Comparables))

	return b.String()
}

// marketAverages computes the three comparable-list statistics. Price per
// square foot is an average of per-comp ratios, not total price over total
// area; a comp with no recorded area contributes a zero ratio. An empty list
// yields zeros rather than a division error.
func marketAverages(comps []property.Comparable) (avgPrice, avgPerSqft, avgDays float64) {
	if len(comps) == 0 {
		return 0, 0, 0
	}
	n := float64(len(comps))
	for _, c := range comps {
		avgPrice += c.Price
		if c.SquareFootage > 0 {
			avgPerSqft += c.Price / float64(c.SquareFootage)
		}
		avgDays += float64(c.DaysOnMarket)
	}
	return avgPrice / n, avgPerSqft / n, avgDays / n
}
