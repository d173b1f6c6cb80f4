package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/XavierBriggs/Midas/internal/registry"
	"github.com/XavierBriggs/Midas/internal/scanner"
	"github.com/XavierBriggs/Midas/internal/server"
	"github.com/XavierBriggs/Midas/pkg/models"
	"github.com/XavierBriggs/Midas/pkg/testutil"
	"github.com/XavierBriggs/Midas/sports/soccer"
	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T, provider *testutil.MockOddsProvider, defaultKey string) chi.Router {
	t.Helper()

	sport, err := soccer.NewModule()
	if err != nil {
		t.Fatalf("build soccer module: %v", err)
	}

	sportRegistry := registry.NewSportRegistry()
	if err := sportRegistry.Register(sport); err != nil {
		t.Fatalf("register sport: %v", err)
	}

	scanners := map[string]*scanner.Scanner{
		"soccer": scanner.NewScanner(provider, nil, sport),
	}

	handler := server.NewHandler(sportRegistry, scanners, defaultKey)
	return server.NewRouter(handler, []string{"http://localhost:3000"})
}

func arbProvider() *testutil.MockOddsProvider {
	return &testutil.MockOddsProvider{
		FetchMatchesFunc: func(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error) {
			return []models.MatchRecord{
				testutil.NewTestMatch("Lyon", "Nice", "2026-09-02T18:00:00Z",
					testutil.NewTestQuote("SharpBook", 2.50, 3.40, 4.20)),
			}, nil
		},
	}
}

func doRequest(t *testing.T, router chi.Router, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetOpportunities_Success(t *testing.T) {
	router := newTestRouter(t, arbProvider(), "server_key")

	rec := doRequest(t, router, "/api/v1/soccer/opportunities?stake=500&multiplier=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Sport         string                        `json:"sport"`
		BaseStake     float64                       `json:"base_stake"`
		Multiplier    int                           `json:"multiplier"`
		TotalStake    float64                       `json:"total_stake"`
		Count         int                           `json:"count"`
		Opportunities []models.ArbitrageOpportunity `json:"opportunities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.Sport != "soccer" || resp.BaseStake != 500 || resp.Multiplier != 2 || resp.TotalStake != 1000 {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Count != 1 || len(resp.Opportunities) != 1 {
		t.Fatalf("expected 1 opportunity, got count=%d len=%d", resp.Count, len(resp.Opportunities))
	}
	if resp.Opportunities[0].Match != "Lyon vs Nice" {
		t.Errorf("match = %q", resp.Opportunities[0].Match)
	}
}

func TestGetOpportunities_HeaderKeyOverridesDefault(t *testing.T) {
	var seenKey string
	provider := &testutil.MockOddsProvider{
		FetchMatchesFunc: func(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error) {
			seenKey = apiKey
			return []models.MatchRecord{}, nil
		},
	}
	router := newTestRouter(t, provider, "server_key")

	rec := doRequest(t, router, "/api/v1/soccer/opportunities", map[string]string{
		"X-Odds-Api-Key": "caller_key",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if seenKey != "caller_key" {
		t.Errorf("provider saw key %q, want caller_key", seenKey)
	}
}

func TestGetOpportunities_MissingKey(t *testing.T) {
	router := newTestRouter(t, arbProvider(), "")

	rec := doRequest(t, router, "/api/v1/soccer/opportunities", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestGetOpportunities_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"stake below minimum", "/api/v1/soccer/opportunities?stake=50"},
		{"stake above maximum", "/api/v1/soccer/opportunities?stake=50000"},
		{"unparseable stake", "/api/v1/soccer/opportunities?stake=lots"},
		{"multiplier out of set", "/api/v1/soccer/opportunities?multiplier=5"},
		{"unparseable multiplier", "/api/v1/soccer/opportunities?multiplier=two"},
	}

	router := newTestRouter(t, arbProvider(), "server_key")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, tt.path, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGetOpportunities_UnknownSport(t *testing.T) {
	router := newTestRouter(t, arbProvider(), "server_key")

	rec := doRequest(t, router, "/api/v1/curling/opportunities", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetOpportunities_ScanErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		scanErr    *models.ScanError
		wantStatus int
		wantPhrase string
	}{
		{"unauthorized", models.ClassifyStatus(401, "Unauthorized"), http.StatusUnauthorized, "invalid or expired"},
		{"rate limited", models.ClassifyStatus(429, "Too Many Requests"), http.StatusTooManyRequests, "Slow down"},
		{"forbidden", models.ClassifyStatus(403, "Forbidden"), http.StatusForbidden, "soccer access"},
		{"provider error", models.ClassifyStatus(503, "Service Unavailable"), http.StatusBadGateway, "503"},
		{"network failure", models.NewNetworkError(context.DeadlineExceeded), http.StatusBadGateway, "Network error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &testutil.MockOddsProvider{
				FetchMatchesFunc: func(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error) {
					return nil, tt.scanErr
				},
			}
			router := newTestRouter(t, provider, "server_key")

			rec := doRequest(t, router, "/api/v1/soccer/opportunities", nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error == "" || !containsFold(resp.Error, tt.wantPhrase) {
				t.Errorf("error message %q missing %q", resp.Error, tt.wantPhrase)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, arbProvider(), "server_key")

	rec := doRequest(t, router, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Status string   `json:"status"`
		Sports []string `json:"sports"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if len(resp.Sports) != 1 || resp.Sports[0] != "soccer" {
		t.Errorf("sports = %v, want [soccer]", resp.Sports)
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
