package realty

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flexFloat tolerates numbers that arrive as strings, with commas or
// currency noise, across RealtyInUS plans.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				return r
			}
			return -1
		}, s)
		if cleaned == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// photoRef accepts either {"href": "..."} objects or bare URL strings.
type photoRef string

func (p *photoRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = photoRef(s)
		return nil
	}
	var obj struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*p = photoRef(obj.Href)
	return nil
}

type searchResponse struct {
	Properties []struct {
		PropertyID string `json:"property_id"`
	} `json:"properties"`
}

type detailResponse struct {
	Properties []detailProperty `json:"properties"`
}

type detailProperty struct {
	PropertyID string `json:"property_id"`
	Address    struct {
		Line       string `json:"line"`
		City       string `json:"city"`
		State      string `json:"state"`
		PostalCode string `json:"postal_code"`
	} `json:"address"`
	Beds         flexFloat `json:"beds"`
	Baths        flexFloat `json:"baths"`
	BuildingSize struct {
		Size flexFloat `json:"size"`
	} `json:"building_size"`
	YearBuilt flexFloat `json:"year_built"`
	LotSize   struct {
		Size  flexFloat `json:"size"`
		Units string    `json:"units"`
	} `json:"lot_size"`
	PropType      string     `json:"prop_type"`
	Price         flexFloat  `json:"price"`
	LastSoldDate  string     `json:"last_sold_date"`
	LastSoldPrice flexFloat  `json:"last_sold_price"`
	Photos        []photoRef `json:"photos"`
}
