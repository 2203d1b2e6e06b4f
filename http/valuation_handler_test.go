package httpapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/property"
	"github.com/yourorg/property-api/rentcast"
)

type fakeAVM struct {
	val      property.Valuation
	err      error
	gotAddr  string
	gotHints rentcast.ValuationHints
}

func (f *fakeAVM) FetchValuation(_ context.Context, address string, hints rentcast.ValuationHints) (property.Valuation, error) {
	f.gotAddr = address
	f.gotHints = hints
	return f.val, f.err
}

func valuationRouter(avm ValuationFetcher) chi.Router {
	r := chi.NewRouter()
	RegisterValuation(r, ValuationDeps{Rentcast: avm})
	return r
}

func TestValuationPost(t *testing.T) {
	avm := &fakeAVM{val: property.Valuation{Address: "1 Main St", EstimatedValue: 221000}}
	r := valuationRouter(avm)

	rr, body := doJSON(t, r, http.MethodPost, "/valuation",
		`{"address": "1 Main St", "property_type": "Single Family", "bedrooms": 3, "bathrooms": 2.5, "square_footage": 1878}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, body["ok"])

	assert.Equal(t, "1 Main St", avm.gotAddr)
	assert.Equal(t, "Single Family", avm.gotHints.PropertyType)
	require.NotNil(t, avm.gotHints.Bedrooms)
	assert.Equal(t, 3, *avm.gotHints.Bedrooms)
	require.NotNil(t, avm.gotHints.Bathrooms)
	assert.Equal(t, 2.5, *avm.gotHints.Bathrooms)
	require.NotNil(t, avm.gotHints.SquareFootage)
	assert.Equal(t, 1878, *avm.gotHints.SquareFootage)
}

func TestValuationGetQueryParams(t *testing.T) {
	avm := &fakeAVM{val: property.Valuation{EstimatedValue: 100000}}
	r := valuationRouter(avm)

	rr, _ := doJSON(t, r, http.MethodGet, "/valuation?address=1+Main+St&bedrooms=4&bathrooms=1.5", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1 Main St", avm.gotAddr)
	require.NotNil(t, avm.gotHints.Bedrooms)
	assert.Equal(t, 4, *avm.gotHints.Bedrooms)
	require.NotNil(t, avm.gotHints.Bathrooms)
	assert.Equal(t, 1.5, *avm.gotHints.Bathrooms)
	assert.Nil(t, avm.gotHints.SquareFootage, "absent hints stay absent")
	assert.Empty(t, avm.gotHints.PropertyType)
}

func TestValuationNotFound(t *testing.T) {
	avm := &fakeAVM{err: apperr.NotFound("rentcast.FetchValuation", "1 Nowhere Ln")}
	r := valuationRouter(avm)

	rr, body := doJSON(t, r, http.MethodPost, "/valuation", `{"address": "1 Nowhere Ln"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "not_found", body["error"])
}
