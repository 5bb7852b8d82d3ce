package sparql

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/goudatijdmachine/straatnamen-api/internal/config"
	"github.com/goudatijdmachine/straatnamen-api/internal/domain"
)

const acceptResults = "application/sparql-results+json"

// Client executes queries against a single configured SPARQL endpoint over
// HTTP GET. A transport failure or unexpected status is returned as a
// domain.UpstreamError; the caller decides how to degrade. No retries.
type Client struct {
	client    *http.Client
	base      http.RoundTripper
	endpoint  string
	userAgent string
}

func NewClient(conf config.Sparql) *Client {
	base := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: time.Duration(conf.ConnectTimeout) * time.Second,
		}).DialContext,
	}

	c := &Client{
		base:      base,
		endpoint:  conf.Endpoint,
		userAgent: conf.UserAgent,
	}
	c.client = &http.Client{
		Timeout:   time.Duration(conf.RequestTimeout) * time.Second,
		Transport: c,
	}
	return c
}

func (c *Client) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)
	return c.base.RoundTrip(req)
}

// Execute sends the query and returns the raw response body.
func (c *Client) Execute(ctx context.Context, query string) ([]byte, error) {

	requestURL := c.endpoint + "?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", acceptResults)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, domain.UpstreamError{Reason: "transport", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.UpstreamError{Reason: "status", Err: errors.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.UpstreamError{Reason: "transport", Err: err}
	}

	return body, nil
}
