package careapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/sundialcare/careadmin/internal/config"
)

const requestTimeout = 30 * time.Second

// Client talks to the scheduling backend's REST API. The backend owns all
// scheduling logic and persistence; this client only moves plain data
// structures across the boundary. Requests are not retried: callers issue a
// single request per user action and surface the outcome.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a care API client authenticating with the OAuth2 client
// credentials flow. Token refresh is handled by the underlying transport.
func NewClient(ctx context.Context, cfg *config.Config) *Client {
	creds := clientcredentials.Config{
		ClientID:     cfg.CareAPIClientID,
		ClientSecret: cfg.CareAPIClientSecret,
		TokenURL:     cfg.CareAPITokenURL,
	}

	httpClient := creds.Client(ctx)
	httpClient.Timeout = requestTimeout

	return &Client{
		baseURL:    cfg.CareAPIBaseURL,
		httpClient: httpClient,
	}
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req, out)
}

// put issues a PUT with a JSON body and decodes the response into out (out
// may be nil when the response body is not needed).
func (c *Client) put(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Include a snippet of the body; backend error payloads are short
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", req.Method, req.URL.Path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
