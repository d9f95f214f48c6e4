// Package transport issues EVE API requests over HTTP(S) and hands the
// response to the conversion core.
//
// Design goals:
//
//   - Keep a tiny, explicit API (Fetch, FetchRaw, FetchAll).
//   - Respect context cancellation on every request.
//   - Be easy to test by injecting a custom RoundTripper.
//   - Translate failures into a small taxonomy (TransportError, ParseError)
//     before the conversion core is ever involved; structure errors from the
//     core pass through unchanged.
//
// The client deliberately has no retry, backoff, auth, caching, or rate
// limiting: one request maps to one connection, opened, used, and closed.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"eveapi/internal/convert"
	"eveapi/internal/metrics"
	"eveapi/internal/xmldom"
)

// DefaultHost is the public EVE API server.
const DefaultHost = "api.eveonline.com"

// Config configures the API client.
//
// Zero values are given sensible defaults:
//   - Host:    DefaultHost
//   - Timeout: 30s
//   - scheme:  https (set PlainHTTP to opt out)
type Config struct {
	// Host is the API server host, e.g. "api.eveonline.com".
	Host string

	// PlainHTTP switches requests to http://. The API defaults to HTTPS.
	PlainHTTP bool

	// Timeout is the per-request timeout applied at the http.Client level.
	Timeout time.Duration

	// BaseHeaders are headers added to every request.
	BaseHeaders http.Header

	// Transport is an optional custom RoundTripper, used by tests to serve
	// canned responses without a network.
	Transport http.RoundTripper

	// Job labels metrics emitted by this client. Empty disables the label
	// ("eveapi" is used).
	Job string
}

// Client issues API requests and converts responses. It is safe for
// concurrent use.
type Client struct {
	httpClient  *http.Client
	host        string
	scheme      string
	baseHeaders http.Header
	job         string
}

// NewClient constructs a Client from Config, applying defaults for zero values.
func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	scheme := "https"
	if cfg.PlainHTTP {
		scheme = "http"
	}
	job := cfg.Job
	if job == "" {
		job = "eveapi"
	}

	hdr := http.Header{}
	for k, vs := range cfg.BaseHeaders {
		for _, v := range vs {
			hdr.Add(k, v)
		}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		host:        cfg.Host,
		scheme:      scheme,
		baseHeaders: hdr,
		job:         job,
	}
}

// Fetch requests the given method with params and returns the converted
// document.
func (c *Client) Fetch(ctx context.Context, m Method, params url.Values) (convert.Map, error) {
	doc, _, err := c.FetchRaw(ctx, m, params)
	return doc, err
}

// FetchRaw is Fetch plus the raw XML bytes of the response, for callers that
// want to archive or re-parse the original document. On conversion failure
// the raw bytes are still returned when they were received intact.
func (c *Client) FetchRaw(ctx context.Context, m Method, params url.Values) (convert.Map, []byte, error) {
	requestURL := m.URL(c.scheme, c.host, params)

	data, err := c.get(ctx, m, requestURL)
	if err != nil {
		return nil, nil, err
	}

	root, err := xmldom.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, data, &ParseError{Method: m.Path, Err: err}
	}
	doc, err := convert.Document(root)
	if err != nil {
		// Structure errors carry their own taxonomy; pass through.
		return nil, data, err
	}
	return doc, data, nil
}

// get performs the HTTP GET and returns the response body. All failures are
// reported as *TransportError; the request is also recorded in metrics.
func (c *Client) get(ctx context.Context, m Method, requestURL string) ([]byte, error) {
	start := time.Now()
	data, err := c.doGet(ctx, requestURL)
	metrics.RecordRequest(c.job, m.Path, err, time.Since(start))
	if err != nil {
		if te, ok := err.(*TransportError); ok {
			te.Method = m.Path
			return nil, te
		}
		return nil, &TransportError{Method: m.Path, URL: requestURL, Err: err}
	}
	return data, nil
}

func (c *Client) doGet(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range c.baseHeaders {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			URL:    requestURL,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}
	return data, nil
}
