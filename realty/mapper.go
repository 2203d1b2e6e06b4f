package realty

import (
	"strconv"
	"strings"

	"github.com/yourorg/property-api/property"
)

const maxPhotos = 5

func mapDetail(p detailProperty, fallbackID string) property.Record {
	a := p.Address
	fullAddress := strings.TrimSpace(a.Line + ", " + a.City + ", " + a.State + " " + a.PostalCode)

	lotUnit := p.LotSize.Units
	if lotUnit == "" {
		lotUnit = "sq ft"
	}
	lotSize := formatSize(float64(p.LotSize.Size)) + " " + lotUnit

	propType := p.PropType
	switch {
	case propType == "":
		propType = property.Unknown
	case strings.Contains(strings.ToLower(propType), "single"):
		propType = "Single Family Residence"
	}

	estimated := property.NotAvailable
	if p.Price > 0 {
		estimated = property.USD(float64(p.Price))
	}

	soldDate := ""
	if p.LastSoldDate != "" {
		soldDate = property.HumanDate(p.LastSoldDate)
	}
	soldPrice := property.Unknown
	if p.LastSoldPrice > 0 {
		soldPrice = property.USD(float64(p.LastSoldPrice))
	}

	photos := make([]string, 0, maxPhotos)
	for _, ph := range p.Photos {
		href := string(ph)
		if href == "" {
			continue
		}
		photos = append(photos, upgradePhotoURL(href))
		if len(photos) == maxPhotos {
			break
		}
	}

	propertyID := p.PropertyID
	if propertyID == "" {
		propertyID = fallbackID
	}

	return property.Record{
		Address:        fullAddress,
		Bedrooms:       int(p.Beds),
		Bathrooms:      float64(p.Baths),
		SquareFootage:  int(p.BuildingSize.Size),
		YearBuilt:      int(p.YearBuilt),
		LotSize:        lotSize,
		PropertyType:   propType,
		EstimatedValue: estimated,
		LastSoldDate:   soldDate,
		LastSoldPrice:  soldPrice,
		Photos:         photos,
		PropertyID:     propertyID,
		Source:         providerName,
	}
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
