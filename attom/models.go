package attom

import (
	"encoding/json"
)

// stringNumber accepts string or number JSON and stores the textual form.
// ATTOM identifiers show up both ways across plans.
type stringNumber string

func (s *stringNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = stringNumber(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = stringNumber(num.String())
	return nil
}

// basicProfileResponse is the typed schema for
// /propertyapi/v1.0.0/property/basicprofile. Absent numeric leaves decode to
// zero, which the canonical record documents as "unknown or none reported".
type basicProfileResponse struct {
	Status struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	} `json:"status"`
	Property []profileProperty `json:"property"`
}

type profileProperty struct {
	Identifier struct {
		AttomID stringNumber `json:"attomId"`
	} `json:"identifier"`
	Address struct {
		Line1 string `json:"line1"`
		Line2 string `json:"line2"`
	} `json:"address"`
	Summary struct {
		PropType string `json:"proptype"`
	} `json:"summary"`
	Building struct {
		Rooms struct {
			Beds       int     `json:"beds"`
			BedsNum    int     `json:"bedsnum"`
			BathsTotal float64 `json:"bathstotal"`
			BathsFull  int     `json:"bathsfull"`
			BathsHalf  int     `json:"bathshalf"`
		} `json:"rooms"`
		Size struct {
			LivingSize    int `json:"livingsize"`
			UniversalSize int `json:"universalsize"`
		} `json:"size"`
		YearBuilt int `json:"yearbuilt"`
	} `json:"building"`
	Lot struct {
		LotSize1     float64 `json:"lotsize1"`
		LotSize1Unit string  `json:"lotsize1unit"`
	} `json:"lot"`
	Assessment struct {
		Market struct {
			MktTtlValue float64 `json:"mktttlvalue"`
		} `json:"market"`
	} `json:"assessment"`
	Sale struct {
		SaleSearchDate string `json:"salesearchdate"`
		Amount         struct {
			SaleAmt float64 `json:"saleamt"`
		} `json:"amount"`
	} `json:"sale"`
}
