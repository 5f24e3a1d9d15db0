package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the RapidAPI apidojo Yahoo Finance host.
	DefaultBaseURL = "https://apidojo-yahoo-finance-v1.p.rapidapi.com"
	rapidAPIHost   = "apidojo-yahoo-finance-v1.p.rapidapi.com"

	region = "US"
)

// Client calls the three Yahoo Finance endpoints used by the assistant:
// quote lookup, fuzzy symbol search, and historical chart data.
// Every call is a single attempt; the only timeout is the HTTP client's.
type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: 15 * time.Second},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// Quotes fetches current trading metrics for one or more comma-separated symbols.
func (c *Client) Quotes(ctx context.Context, symbols string) (*QuoteResponse, error) {
	q := url.Values{"symbols": {symbols}, "region": {region}}
	var out QuoteResponse
	if err := c.getJSON(ctx, "/market/v2/get-quotes", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs the auto-complete symbol search for free-text input.
func (c *Client) Search(ctx context.Context, query string) (*SearchResponse, error) {
	q := url.Values{"q": {query}, "region": {region}}
	var out SearchResponse
	if err := c.getJSON(ctx, "/auto-complete", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chart fetches the historical close-price series for one symbol.
func (c *Client) Chart(ctx context.Context, symbol, interval, rangeParam string) (*ChartResponse, error) {
	q := url.Values{
		"symbol":   {symbol},
		"interval": {interval},
		"range":    {rangeParam},
		"region":   {region},
	}
	var out ChartResponse
	if err := c.getJSON(ctx, "/stock/v3/get-chart", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", rapidAPIHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read yahoo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo %s returned %d: %s", path, resp.StatusCode, preview(body))
	}
	if strings.HasPrefix(string(body), "<") {
		return fmt.Errorf("yahoo returned non-json body: %s", preview(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse yahoo json: %v; body: %s", err, preview(body))
	}
	return nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}
