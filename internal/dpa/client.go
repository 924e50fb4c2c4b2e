// Package dpa fetches raw results documents from the elections data API.
package dpa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	requestTimeout = 30 * time.Second
	// Results documents are a few hundred kilobytes at most.
	maxBodySize = 4 << 20
)

// Client fetches results for one configured election and stage.
type Client struct {
	baseURL    string
	electionID string
	stage      string
	httpClient *http.Client
}

func NewClient(baseURL, electionID, stage string) *Client {
	return &Client{
		baseURL:    baseURL,
		electionID: electionID,
		stage:      stage,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// FetchResults issues GET {base}/results?election=...&stage=... and returns
// the raw JSON body. Any transport failure or non-2xx status is an error.
func (c *Client) FetchResults(ctx context.Context) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL + "/results")
	if err != nil {
		return nil, fmt.Errorf("build results url: %w", err)
	}
	query := endpoint.Query()
	query.Set("election", c.electionID)
	query.Set("stage", c.stage)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build results request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch results: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch results: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read results body: %w", err)
	}
	return body, nil
}
