package realty

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", 100, logger.New("test"))
	c.http.RetryMax = 0
	c.SetBaseURL(srv.URL)
	return c
}

const searchPayload = `{"properties": [{"property_id": "M1234567890"}]}`

const detailPayload = `{
	"properties": [{
		"property_id": "M1234567890",
		"address": {"line": "917 S Westgate Ave", "city": "Los Angeles", "state": "CA", "postal_code": "90049"},
		"beds": "3",
		"baths": 2,
		"building_size": {"size": "1,748"},
		"year_built": 1938,
		"lot_size": {"size": 6502, "units": "sqft"},
		"prop_type": "single_family",
		"price": "$1,495,000",
		"last_sold_date": "2015-05-22",
		"last_sold_price": 1100000,
		"photos": [
			{"href": "https://p.rdcpix.com/x-w480_h360.jpg"},
			"https://p.rdcpix.com/y-w480_h360.jpg"
		]
	}]
}`

func TestFetchProperty(t *testing.T) {
	var searchQuery map[string][]string
	var detailID, gotHost string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/properties/v2/list-for-sale":
			searchQuery = r.URL.Query()
			gotHost = r.Header.Get("X-RapidAPI-Host")
			w.Write([]byte(searchPayload))
		case "/properties/v2/detail":
			detailID = r.URL.Query().Get("property_id")
			w.Write([]byte(detailPayload))
		default:
			http.NotFound(w, r)
		}
	})

	rec, err := c.FetchProperty(context.Background(), "917 S Westgate Ave, Los Angeles, CA 90049")
	require.NoError(t, err)

	assert.Equal(t, "realty-in-us.p.rapidapi.com", gotHost)
	assert.Equal(t, []string{"Los Angeles"}, searchQuery["city"])
	assert.Equal(t, []string{"CA"}, searchQuery["state_code"])
	assert.Equal(t, []string{"917 S Westgate Ave"}, searchQuery["address"])
	assert.Equal(t, []string{"90049"}, searchQuery["postal_code"])
	assert.Equal(t, "M1234567890", detailID)

	assert.Equal(t, "917 S Westgate Ave, Los Angeles, CA 90049", rec.Address)
	assert.Equal(t, 3, rec.Bedrooms, "string beds coerce to numbers")
	assert.Equal(t, 2.0, rec.Bathrooms)
	assert.Equal(t, 1748, rec.SquareFootage, "comma-grouped sizes coerce to numbers")
	assert.Equal(t, 1938, rec.YearBuilt)
	assert.Equal(t, "6502 sqft", rec.LotSize)
	assert.Equal(t, "Single Family Residence", rec.PropertyType)
	assert.Equal(t, "$1,495,000", rec.EstimatedValue, "currency-noise prices coerce to numbers")
	assert.Equal(t, "May 22, 2015", rec.LastSoldDate)
	assert.Equal(t, "$1,100,000", rec.LastSoldPrice)
	assert.Equal(t, []string{
		"https://p.rdcpix.com/x-w2048_h1536.jpg",
		"https://p.rdcpix.com/y-w2048_h1536.jpg",
	}, rec.Photos, "both href objects and bare strings, upgraded to full size")
	assert.Equal(t, "M1234567890", rec.PropertyID)
	assert.Equal(t, "realty", rec.Source)
}

func TestFetchPropertyNoListings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": []}`))
	})

	_, err := c.FetchProperty(context.Background(), "1 Nowhere Ln, Ghost Town, NV 89000")
	assert.True(t, apperr.IsNotFound(err))
}

func TestFetchPropertyMissingPropertyID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"properties": [{"property_id": ""}]}`))
	})

	_, err := c.FetchProperty(context.Background(), "1 Main St, Anytown, CA 12345")
	assert.True(t, apperr.IsNotFound(err))
}

func TestFetchPropertyDetailUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/properties/v2/list-for-sale" {
			w.Write([]byte(searchPayload))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message": "quota exceeded"}`))
	})

	_, err := c.FetchProperty(context.Background(), "1 Main St, Anytown, CA 12345")
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`1748`, 1748},
		{`"1748"`, 1748},
		{`"1,748"`, 1748},
		{`"$495,000"`, 495000},
		{`null`, 0},
		{`""`, 0},
		{`"n/a"`, 0},
	}
	for _, tt := range tests {
		var f flexFloat
		require.NoError(t, json.Unmarshal([]byte(tt.in), &f), "input %s", tt.in)
		assert.Equal(t, tt.want, float64(f), "input %s", tt.in)
	}
}

func TestPhotoRef(t *testing.T) {
	var p photoRef
	require.NoError(t, json.Unmarshal([]byte(`{"href": "https://x/1.jpg"}`), &p))
	assert.Equal(t, "https://x/1.jpg", string(p))

	require.NoError(t, json.Unmarshal([]byte(`"https://x/2.jpg"`), &p))
	assert.Equal(t, "https://x/2.jpg", string(p))
}

func TestUpgradePhotoURL(t *testing.T) {
	assert.Equal(t,
		"https://p.rdcpix.com/abc-w2048_h1536.jpg",
		upgradePhotoURL("https://p.rdcpix.com/abc-w480_h360.jpg"))
	// URLs without a size suffix pass through untouched.
	assert.Equal(t, "https://x/plain.jpg", upgradePhotoURL("https://x/plain.jpg"))
}
