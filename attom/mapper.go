package attom

import (
	"strconv"
	"strings"

	"github.com/yourorg/property-api/property"
)

// propTypeNames expands ATTOM's property-type abbreviations. Unmapped codes
// pass through unchanged.
var propTypeNames = map[string]string{
	"SFR":   "Single Family Residence",
	"CONDO": "Condominium",
	"TWNHS": "Townhouse",
}

func mapProfile(p profileProperty) property.Record {
	rooms := p.Building.Rooms

	beds := rooms.Beds
	if beds == 0 {
		beds = rooms.BedsNum
	}

	baths := rooms.BathsTotal
	if baths == 0 {
		baths = float64(rooms.BathsFull) + 0.5*float64(rooms.BathsHalf)
	}

	sqft := p.Building.Size.LivingSize
	if sqft == 0 {
		sqft = p.Building.Size.UniversalSize
	}

	unit := p.Lot.LotSize1Unit
	if unit == "" {
		unit = "sq ft"
	}
	lotSize := formatLotValue(p.Lot.LotSize1) + " " + unit

	propType := p.Summary.PropType
	if propType == "" {
		propType = property.Unknown
	} else if full, ok := propTypeNames[propType]; ok {
		propType = full
	}

	estimated := property.NotAvailable
	if p.Assessment.Market.MktTtlValue > 0 {
		estimated = property.USD(p.Assessment.Market.MktTtlValue)
	}

	soldDate := ""
	if p.Sale.SaleSearchDate != "" {
		soldDate = property.HumanDate(p.Sale.SaleSearchDate)
	}
	soldPrice := property.Unknown
	if p.Sale.Amount.SaleAmt > 0 {
		soldPrice = property.USD(p.Sale.Amount.SaleAmt)
	}

	return property.Record{
		Address:        strings.TrimSpace(p.Address.Line1 + ", " + p.Address.Line2),
		Bedrooms:       maxInt(beds, 0),
		Bathrooms:      maxFloat(baths, 0),
		SquareFootage:  maxInt(sqft, 0),
		YearBuilt:      maxInt(p.Building.YearBuilt, 0),
		LotSize:        lotSize,
		PropertyType:   propType,
		EstimatedValue: estimated,
		LastSoldDate:   soldDate,
		LastSoldPrice:  soldPrice,
		Photos:         []string{}, // basicprofile carries no media
		PropertyID:     string(p.Identifier.AttomID),
		Source:         providerName,
	}
}

func formatLotValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func maxInt(v, floor int) int {
	if v > floor {
		return v
	}
	return floor
}

func maxFloat(v, floor float64) float64 {
	if v > floor {
		return v
	}
	return floor
}
