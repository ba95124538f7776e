package railapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"context"

	"github.com/transitkit/rail12306/config"
	"github.com/transitkit/rail12306/internal/memo"
)

const primePath = "/otn/leftTicket/init"

// Client is the HTTP client for the 12306 endpoints.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	stationNameURL string
	lcQueryInitURL string

	lcPath memo.Cell[string]
}

// NewClient builds a client from cfg. The cookie jar keeps whatever
// session cookies the service sets during priming.
func NewClient(cfg config.APIConfig) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
		baseURL:        cfg.BaseURL,
		stationNameURL: cfg.StationNameURL,
		lcQueryInitURL: cfg.LCQueryInitURL,
	}
}

func (c *Client) get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	if len(params) > 0 {
		rawURL = rawURL + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)
	}
	return resp, nil
}

// GetJSON issues a GET against a path below the base URL and decodes
// the JSON body into v.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, v any) error {
	resp, err := c.get(ctx, c.baseURL+path, params)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// GetText fetches a raw text body from an absolute URL.
func (c *Client) GetText(ctx context.Context, rawURL string) (string, error) {
	resp, err := c.get(ctx, rawURL, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", rawURL, err)
	}
	return string(body), nil
}

// PrimeSession hits the leftTicket init page so the jar picks up the
// session cookies. A response without cookies still counts as success;
// only failing to reach the endpoint fails the operation.
func (c *Client) PrimeSession(ctx context.Context) error {
	resp, err := c.get(ctx, c.baseURL+primePath, nil)
	if err != nil {
		return fmt.Errorf("get cookie failed: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// StationNameJS fetches the station-table JS snippet. Implements
// station.Source.
func (c *Client) StationNameJS(ctx context.Context) (string, error) {
	return c.GetText(ctx, c.stationNameURL)
}
