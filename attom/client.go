// Package attom fetches property facts from the ATTOM gateway and maps them
// into the canonical record shape.
package attom

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

const providerName = "attom"

type Client struct {
	key     string
	baseURL string
	http    *retryablehttp.Client
	limit   *rate.Limiter
	log     *logger.Logger
}

// NewClient builds an ATTOM client. An empty apiKey is allowed; calls made
// without one fail with an auth error before any network I/O.
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
		baseURL: "https://api.gateway.attomdata.com",
		http:    rc,
		limit:   rate.NewLimiter(rate.Limit(rps), 1),
		log:     log.WithProvider(providerName),
	}
}

// SetBaseURL points the client at a different gateway host. Tests use this.
func (c *Client) SetBaseURL(u string) { c.baseURL = strings.TrimRight(u, "/") }

// FetchProperty looks up one property by free-form address via the
// basicprofile endpoint and returns the canonical record.
func (c *Client) FetchProperty(ctx context.Context, address string) (property.Record, error) {
	const op = "attom.FetchProperty"

	if strings.TrimSpace(address) == "" {
		return property.Record{}, apperr.Validation(op, "address is empty")
	}
	if c.key == "" {
		return property.Record{}, apperr.Auth(op, providerName)
	}

	parts := addr.Parse(address)
	q := url.Values{}
	q.Set("address1", parts.StreetAddress)
	q.Set("address2", parts.Line2())
	u := fmt.Sprintf("%s/propertyapi/v1.0.0/property/basicprofile?%s", c.baseURL, q.Encode())

	raw, err := c.get(ctx, op, u)
	if err != nil {
		return property.Record{}, err
	}

	var resp basicProfileResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Record{}, apperr.Wrap(apperr.KindUpstream, op, "response is not valid JSON: "+bodyPrefix(raw), err)
	}
	if resp.Status.Code != 0 {
		observability.ProviderErrors.WithLabelValues(providerName, "upstream").Inc()
		return property.Record{}, apperr.New(apperr.KindUpstream, op,
			fmt.Sprintf("provider status %d: %s", resp.Status.Code, resp.Status.Msg))
	}
	if len(resp.Property) == 0 {
		observability.ProviderErrors.WithLabelValues(providerName, "not_found").Inc()
		return property.Record{}, apperr.NotFound(op, address)
	}

	rec := mapProfile(resp.Property[0])
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
	req.Header.Set("accept", "application/json")
	req.Header.Set("apikey", c.key)

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
