package contracts

import (
	"context"

	"github.com/XavierBriggs/Midas/pkg/models"
)

// OddsProvider defines the interface for fetching match odds from external
// vendors. Keeping this stable lets the scanner swap in future in-house
// aggregators without touching detection logic.
type OddsProvider interface {
	// FetchMatches retrieves all upcoming matches with per-bookmaker
	// match-result quotes. The credential is supplied per request and must
	// never be logged or stored. Failures are returned as *models.ScanError.
	FetchMatches(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error)

	// GetRateLimits returns current provider quota information
	GetRateLimits() *models.RateLimits
}

// ScanCache memoizes scan results for a bounded validity window so repeated
// dashboard refreshes do not re-issue provider requests. Implementations must
// return byte-for-byte the list that was stored.
type ScanCache interface {
	// Lookup returns the cached opportunity list for key, reporting a miss
	// when the key is absent or expired
	Lookup(ctx context.Context, key string) ([]models.ArbitrageOpportunity, bool, error)

	// Save stores the opportunity list under key for the configured window
	Save(ctx context.Context, key string, arbs []models.ArbitrageOpportunity) error
}
