// Package blockchaininfo implements the paginated address endpoint of blockchain.info.
package blockchaininfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
)

// DefaultBaseURL is the public blockchain.info endpoint.
const DefaultBaseURL = "https://blockchain.info"

const fetchPageOperation = "fetch_page"

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %s", e.Status)
}

// Client fetches address pages.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
	limiter    ratelimit.Limiter
	metrics    Metrics
}

// NewClient builds a Client. rps <= 0 disables request pacing.
func NewClient(baseURL string, httpClient HTTPDoer, rps int, metrics Metrics) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse provider url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("provider url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("provider url missing host")
	}
	if httpClient == nil {
		return nil, errors.New("http client is required")
	}
	if metrics == nil {
		return nil, errors.New("provider metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    metrics,
	}, nil
}

// FetchPage requests the page of address transactions starting at offset and returns the
// decoded page together with the raw response body.
func (c *Client) FetchPage(ctx context.Context, address string, offset int) (page *model.AddressPage, raw []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(fetchPageOperation, err, started)
	}()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(address, offset), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("get address %s offset %d: %w", address, offset, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	raw, err = readBody(resp)
	if err != nil {
		return nil, nil, fmt.Errorf("read address %s offset %d: %w", address, offset, err)
	}

	page, err = model.DecodeAddressPage(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode address %s offset %d: %w", address, offset, err)
	}
	return page, raw, nil
}

func (c *Client) pageURL(address string, offset int) string {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("offset", strconv.Itoa(offset))
	return c.baseURL + "/address/" + url.PathEscape(address) + "?" + query.Encode()
}

func readBody(resp *http.Response) ([]byte, error) {
	if !strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		return io.ReadAll(resp.Body)
	}
	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = zr.Close()
	}()
	return io.ReadAll(zr)
}
