// Package client provides an HTTP client for the matchpulse API, used by the
// recommend CLI. Requests are retried with backoff and rate limited.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/yourusername/matchpulse/internal/models"
)

// Config holds configuration for the API client
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second
}

// DefaultConfig returns recommended defaults for a local service
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      10 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 2 * time.Second,
		RateLimit:    10.0,
	}
}

// Client talks to the matchpulse HTTP API
type Client struct {
	http    *retryablehttp.Client
	limiter *rate.Limiter
	baseURL string
}

// New creates a new API client
func New(cfg Config, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = logger

	return &Client{
		http:    retryClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		baseURL: cfg.BaseURL,
	}
}

// TopLeagueMatches fetches the fixture listing
func (c *Client) TopLeagueMatches(ctx context.Context) ([]models.MatchCard, error) {
	var cards []models.MatchCard
	if err := c.getJSON(ctx, "/matches/top-leagues", &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// LiveStats fetches the live snapshot for a fixture
func (c *Client) LiveStats(ctx context.Context, fixtureID string) (models.LiveStats, error) {
	var stats models.LiveStats
	if err := c.getJSON(ctx, "/match/"+fixtureID+"/live", &stats); err != nil {
		return models.LiveStats{}, err
	}
	return stats, nil
}

// Recommend posts a recommendation request and returns the engine result
func (c *Client) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendation", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var result models.RecommendationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("API error: unexpected status %d", resp.StatusCode)
}
