// Package client fetches portfolio data from a dashboard API server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bobmcallan/portfolio-dashboard/internal/models"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// StatusError is returned when the server answers with a non-200 status.
// Error() is the message shown to the user; the server's own error text is
// kept in ServerMessage.
type StatusError struct {
	Message       string
	StatusCode    int
	ServerMessage string
}

func (e *StatusError) Error() string {
	return e.Message
}

// PortfolioClient reads the /api/portfolio endpoints of a dashboard server.
// It satisfies portfolio.Source.
type PortfolioClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPortfolioClient creates a client targeting baseURL with the given timeout.
func NewPortfolioClient(baseURL string, timeout time.Duration) *PortfolioClient {
	return &PortfolioClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Holdings fetches GET /api/portfolio/holdings.
func (c *PortfolioClient) Holdings(ctx context.Context) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := c.getJSON(ctx, "/api/portfolio/holdings", "Failed to fetch holdings", &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// Allocation fetches GET /api/portfolio/allocation.
func (c *PortfolioClient) Allocation(ctx context.Context) (*models.Allocation, error) {
	var allocation models.Allocation
	if err := c.getJSON(ctx, "/api/portfolio/allocation", "Failed to fetch allocation data", &allocation); err != nil {
		return nil, err
	}
	return &allocation, nil
}

// Performance fetches GET /api/portfolio/performance.
func (c *PortfolioClient) Performance(ctx context.Context) (*models.Performance, error) {
	var perf models.Performance
	if err := c.getJSON(ctx, "/api/portfolio/performance", "Failed to fetch performance data", &perf); err != nil {
		return nil, err
	}
	return &perf, nil
}

// Summary fetches GET /api/portfolio/summary.
func (c *PortfolioClient) Summary(ctx context.Context) (*models.Summary, error) {
	var summary models.Summary
	if err := c.getJSON(ctx, "/api/portfolio/summary", "Failed to fetch portfolio summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// getJSON performs a GET and decodes a 200 response into v. failMsg becomes
// the StatusError message for any other status.
func (c *PortfolioClient) getJSON(ctx context.Context, path, failMsg string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach portfolio server: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errBody)
		return &StatusError{
			Message:       failMsg,
			StatusCode:    resp.StatusCode,
			ServerMessage: errBody.Error,
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
