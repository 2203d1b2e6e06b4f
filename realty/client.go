// Package realty fetches property facts from the RealtyInUS API behind
// RapidAPI. Lookups are two-step: a for-sale search narrows the address to a
// property_id, then the detail endpoint supplies the facts.
package realty

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/yourorg/property-api/internal/addr"
	"github.com/yourorg/property-api/internal/apperr"
	"github.com/yourorg/property-api/internal/logger"
	"github.com/yourorg/property-api/internal/observability"
	"github.com/yourorg/property-api/property"
)

const (
	providerName = "realty"
	rapidHost    = "realty-in-us.p.rapidapi.com"
)

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
		baseURL: "https://" + rapidHost,
		http:    rc,
		limit:   rate.NewLimiter(rate.Limit(rps), 1),
		log:     log.WithProvider(providerName),
	}
}

// SetBaseURL points the client at a different host. Tests use this.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// FetchProperty resolves an address to the best-matching for-sale listing
// and returns its detail as a canonical record.
func (c *Client) FetchProperty(ctx context.Context, address string) (property.Record, error) {
	const op = "realty.FetchProperty"

	if strings.TrimSpace(address) == "" {
		return property.Record{}, apperr.Validation(op, "address is empty")
	}
	if c.key == "" {
		return property.Record{}, apperr.Auth(op, providerName)
	}

	parts := addr.Parse(address)
	q := url.Values{}
	q.Set("city", parts.City)
	q.Set("state_code", parts.State)
	q.Set("offset", "0")
	q.Set("limit", "10")
	q.Set("sort", "relevance")
	if parts.StreetAddress != "" {
		q.Set("address", parts.StreetAddress)
	}
	if parts.ZipCode != "" {
		q.Set("postal_code", parts.ZipCode)
	}

	raw, err := c.get(ctx, op, c.baseURL+"/properties/v2/list-for-sale?"+q.Encode())
	if err != nil {
		return property.Record{}, err
	}
	var search searchResponse
	if err := json.Unmarshal(raw, &search); err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Record{}, apperr.Wrap(apperr.KindUpstream, op, "search response is not valid JSON: "+bodyPrefix(raw), err)
	}
	if len(search.Properties) == 0 || search.Properties[0].PropertyID == "" {
		observability.ProviderErrors.WithLabelValues(providerName, "not_found").Inc()
		return property.Record{}, apperr.NotFound(op, address)
	}
	propertyID := search.Properties[0].PropertyID

	dq := url.Values{}
	dq.Set("property_id", propertyID)
	raw, err = c.get(ctx, op, c.baseURL+"/properties/v2/detail?"+dq.Encode())
	if err != nil {
		return property.Record{}, err
	}
	var detail detailResponse
	if err := json.Unmarshal(raw, &detail); err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Record{}, apperr.Wrap(apperr.KindUpstream, op, "detail response is not valid JSON: "+bodyPrefix(raw), err)
	}
	if len(detail.Properties) == 0 {
		observability.ProviderErrors.WithLabelValues(providerName, "not_found").Inc()
		return property.Record{}, apperr.NotFound(op, address)
	}

	rec := mapDetail(detail.Properties[0], propertyID)
	c.log.WithContext(ctx).Info("record produced", "address", rec.Address, "property_id", rec.PropertyID)
	return rec, nil
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
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", rapidHost)

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
