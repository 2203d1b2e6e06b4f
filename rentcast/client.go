// Package rentcast fetches property facts and automated valuations from the
// Rentcast API and maps them into the canonical shapes.
package rentcast

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/internal/logger"
	"github.com/yourorg/property-api/internal/observability"
	"github.com/yourorg/property-api/property"
)

const providerName = "rentcast"

// compCount is the fixed number of comparables requested per valuation.
const compCount = 20

type Client struct {
	key     string
	baseURL string
	http    *retryablehttp.Client
	limit   *rate.Limiter
	log     *logger.Logger
}

func NewClient(apiKey string, rps float64, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 6 * time.Second
	rc.Logger = nil

	if rps <= 0 {
		rps = 5
	}
	return &Client{
		key:     apiKey,
		baseURL: "https://api.rentcast.io/v1",
		http:    rc,
		limit:   rate.NewLimiter(rate.Limit(rps), 1),
		log:     log.WithProvider(providerName),
	}
}

// SetBaseURL points the client at a different host. Tests use this.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// FetchProperty looks up a property record by free-form address. Rentcast
// matches the whole address string itself, so no parsing happens here.
func (c *Client) FetchProperty(ctx context.Context, address string) (property.Record, error) {
	const op = "rentcast.FetchProperty"

	if strings.TrimSpace(address) == "" {
		return property.Record{}, apperr.Validation(op, "address is empty")
	}
	if c.key == "" {
		return property.Record{}, apperr.Auth(op, providerName)
	}

	q := url.Values{}
	q.Set("address", address)
	raw, err := c.get(ctx, op, c.baseURL+"/properties?"+q.Encode())
	if err != nil {
		return property.Record{}, err
	}

	var results []propertyResult
	if err := json.Unmarshal(raw, &results); err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Record{}, apperr.Wrap(apperr.KindUpstream, op, "response is not valid JSON: "+bodyPrefix(raw), err)
	}
	if len(results) == 0 {
		observability.ProviderErrors.WithLabelValues(providerName, "not_found").Inc()
		return property.Record{}, apperr.NotFound(op, address)
	}

	rec := mapProperty(results[0])
	c.log.WithContext(ctx).Info("record produced", "address", rec.Address, "property_id", rec.PropertyID)
	return rec, nil
}

// ValuationHints are optional known attributes forwarded to the AVM request.
// Pointers distinguish "not provided" from a legitimate zero.
type ValuationHints struct {
	PropertyType  string
	Bedrooms      *int
	Bathrooms     *float64
	SquareFootage *int
}

// FetchValuation requests the AVM estimate plus comparables for an address.
// Every figure is passed through unrounded; the provider's comparable order
// is preserved.
func (c *Client) FetchValuation(ctx context.Context, address string, hints ValuationHints) (property.Valuation, error) {
	const op = "rentcast.FetchValuation"

	if strings.TrimSpace(address) == "" {
		return property.Valuation{}, apperr.Validation(op, "address is empty")
	}
	if c.key == "" {
		return property.Valuation{}, apperr.Auth(op, providerName)
	}

	q := url.Values{}
	q.Set("address", address)
	if hints.PropertyType != "" {
		q.Set("propertyType", hints.PropertyType)
	}
	if hints.Bedrooms != nil {
		q.Set("bedrooms", strconv.Itoa(*hints.Bedrooms))
	}
	if hints.Bathrooms != nil {
		q.Set("bathrooms", strconv.FormatFloat(*hints.Bathrooms, 'f', -1, 64))
	}
	if hints.SquareFootage != nil {
		q.Set("squareFootage", strconv.Itoa(*hints.SquareFootage))
	}
	q.Set("compCount", strconv.Itoa(compCount))

	raw, err := c.get(ctx, op, c.baseURL+"/avm/value?"+q.Encode())
	if err != nil {
		return property.Valuation{}, err
	}

	var resp avmResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Valuation{}, apperr.Wrap(apperr.KindUpstream, op, "response is not valid JSON: "+bodyPrefix(raw), err)
	}

	val := mapValuation(address, resp)
	c.log.WithContext(ctx).Info("valuation produced", "address", address, "comparables", len(val.Comparables))
	return val, nil
}

func (c *Client) get(ctx context.Context, op, u string) ([]byte, error) {
	if err := c.limit.Wait(ctx); err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, op, "rate limit wait canceled", err)
	}
	observability.ProviderRequests.WithLabelValues(providerName).Inc()
	c.log.WithContext(ctx).Debug("request issued", "url", u)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, op, "build request", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("X-Api-Key", c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return nil, apperr.Wrap(apperr.KindUpstream, op, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := ioReadAllLimit(resp.Body, 4<<20)
	if err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return nil, apperr.Wrap(apperr.KindUpstream, op, "read response", err)
	}
	c.log.WithContext(ctx).Debug("response received", "status", resp.StatusCode)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return nil, apperr.Upstream(op, resp.StatusCode, bodyPrefix(body))
	}
	return body, nil
}

func bodyPrefix(b []byte) string {
	const n = 200
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}
