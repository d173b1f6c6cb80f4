package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/XavierBriggs/Midas/pkg/contracts"
	"github.com/XavierBriggs/Midas/pkg/models"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com"
	apiVersion     = "v4"
	userAgent      = "Midas/1.0 (Fortuna Arbitrage Scanner)"
	defaultTimeout = 30 * time.Second
)

// Client implements the OddsProvider interface for The Odds API.
// Failed scans are surfaced immediately as typed errors; retry timing is left
// to the caller, so no automatic retries happen here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rateLimits *models.RateLimits
	mu         sync.RWMutex
}

// Ensure Client implements OddsProvider
var _ contracts.OddsProvider = (*Client)(nil)

// NewClient creates a new The Odds API client with the default endpoint
func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL, defaultTimeout)
}

// NewClientWithBaseURL creates a client against a custom endpoint. Unit tests
// point this at an httptest server.
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimits: &models.RateLimits{
			RequestsRemaining: 500, // Default quota
			RequestsUsed:      0,
		},
	}
}

// FetchMatches retrieves upcoming matches with per-bookmaker match-result
// quotes in decimal format. The API key is passed per request and never
// stored or logged.
func (c *Client) FetchMatches(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds", c.baseURL, apiVersion, opts.Sport)

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("regions", strings.Join(opts.Regions, ","))
	params.Set("markets", strings.Join(opts.Markets, ","))
	params.Set("oddsFormat", "decimal")
	params.Set("dateFormat", "iso")
	if len(opts.Bookmakers) > 0 {
		params.Set("bookmakers", strings.Join(opts.Bookmakers, ","))
	}

	fullURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	body, err := c.doRequest(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	var apiResp []oddsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, models.NewProviderError("unparseable odds response", err)
	}

	return c.parseOddsResponse(apiResp), nil
}

// GetRateLimits returns current provider quota information
func (c *Client) GetRateLimits() *models.RateLimits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rateLimits
}

// doRequest performs a single HTTP request and classifies failures
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, models.NewProviderError("create request", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewNetworkError(err)
	}
	defer resp.Body.Close()

	// Update rate limits from headers
	c.updateRateLimits(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewNetworkError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, models.ClassifyStatus(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return body, nil
}

// updateRateLimits extracts rate limit info from response headers
func (c *Client) updateRateLimits(headers http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := headers.Get("x-requests-remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimits.RequestsRemaining = val
		}
	}

	if used := headers.Get("x-requests-used"); used != "" {
		if val, err := strconv.Atoi(used); err == nil {
			c.rateLimits.RequestsUsed = val
		}
	}
}

// parseOddsResponse converts the API response to internal match records.
// Only the first market per bookmaker is authoritative; bookmakers without
// markets are dropped here so downstream code never sees them.
func (c *Client) parseOddsResponse(apiResp []oddsResponse) []models.MatchRecord {
	matches := make([]models.MatchRecord, 0, len(apiResp))

	for _, match := range apiResp {
		quotes := make([]models.BookmakerQuote, 0, len(match.Bookmakers))

		for _, bk := range match.Bookmakers {
			if len(bk.Markets) == 0 {
				continue
			}

			outcomes := make([]models.OutcomePrice, 0, len(bk.Markets[0].Outcomes))
			for _, out := range bk.Markets[0].Outcomes {
				outcomes = append(outcomes, models.OutcomePrice{
					Name:  out.Name,
					Price: out.Price,
				})
			}

			quotes = append(quotes, models.BookmakerQuote{
				Bookmaker: bk.Title,
				Outcomes:  outcomes,
			})
		}

		matches = append(matches, models.MatchRecord{
			ID:           match.ID,
			SportKey:     match.SportKey,
			HomeTeam:     match.HomeTeam,
			AwayTeam:     match.AwayTeam,
			CommenceTime: match.CommenceTime,
			Quotes:       quotes,
		})
	}

	return matches
}

// API response structures matching The Odds API JSON format

type oddsResponse struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []bookmaker `json:"bookmakers"`
}

type bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []market `json:"markets"`
}

type market struct {
	Key        string    `json:"key"`
	LastUpdate string    `json:"last_update"`
	Outcomes   []outcome `json:"outcomes"`
}

type outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
