// Package scanner orchestrates one arbitrage scan: fetch odds from the
// provider, reduce to best prices per match, evaluate sure-win splits and
// render kickoff times for display.
package scanner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/XavierBriggs/Midas/internal/arbitrage"
	"github.com/XavierBriggs/Midas/internal/pricing"
	"github.com/XavierBriggs/Midas/pkg/contracts"
	"github.com/XavierBriggs/Midas/pkg/models"
)

// kickoffLayout parses provider instants after the "Z" suffix has been
// normalized to an explicit offset
const kickoffLayout = "2006-01-02T15:04:05-07:00"

// displayLayout renders kickoff as day, abbreviated month, 24-hour time
const displayLayout = "02 Jan 15:04"

// Scanner runs arbitrage scans for a single sport. One scan is one blocking
// provider request followed by in-process computation; there is no internal
// concurrency beyond the network call.
type Scanner struct {
	provider contracts.OddsProvider
	cache    contracts.ScanCache // nil disables memoization
	sport    contracts.SportModule
}

// NewScanner creates a scanner. cache may be nil, in which case every scan
// hits the provider.
func NewScanner(provider contracts.OddsProvider, cache contracts.ScanCache, sport contracts.SportModule) *Scanner {
	return &Scanner{
		provider: provider,
		cache:    cache,
		sport:    sport,
	}
}

// Scan retrieves odds and returns every match admitting a sure-win split of
// totalStake, preserving the provider's match ordering. On any retrieval
// failure it returns an empty list plus a *models.ScanError — never partial
// results. An empty list with a nil error means no opportunities exist right
// now, which is the common case.
func (s *Scanner) Scan(ctx context.Context, apiKey string, totalStake float64) ([]models.ArbitrageOpportunity, error) {
	key := CacheKey(apiKey, totalStake)

	if s.cache != nil {
		if arbs, hit, err := s.cache.Lookup(ctx, key); err != nil {
			fmt.Printf("[%s] cache lookup error: %v\n", s.sport.GetDisplayName(), err)
		} else if hit {
			return arbs, nil
		}
	}

	matches, err := s.provider.FetchMatches(ctx, apiKey, &models.FetchOptions{
		Sport:      s.sport.GetSportKey(),
		Regions:    s.sport.GetRegions(),
		Markets:    []string{s.sport.GetMarketKey()},
		Bookmakers: s.sport.GetBookmakers(),
	})
	if err != nil {
		return []models.ArbitrageOpportunity{}, err
	}

	arbs := make([]models.ArbitrageOpportunity, 0)

	for _, match := range matches {
		best := pricing.SelectBestPrices(match.Quotes)

		plan := arbitrage.Evaluate(best.Odds(), totalStake)
		if plan == nil {
			// No arbitrage in this market, the expected case
			continue
		}

		kickoff, err := s.formatKickoff(match.CommenceTime)
		if err != nil {
			fmt.Printf("[%s] skipping %s vs %s: %v\n",
				s.sport.GetDisplayName(), match.HomeTeam, match.AwayTeam, err)
			continue
		}

		arbs = append(arbs, models.ArbitrageOpportunity{
			Match:      fmt.Sprintf("%s vs %s", match.HomeTeam, match.AwayTeam),
			Kickoff:    kickoff,
			Prices:     best,
			Stakes:     plan.Stakes,
			TotalStake: plan.TotalStake,
			Payout:     plan.Payout,
			Profit:     plan.Profit,
			ROI:        plan.ROI,
		})
	}

	if s.cache != nil {
		if err := s.cache.Save(ctx, key, arbs); err != nil {
			fmt.Printf("[%s] cache save error: %v\n", s.sport.GetDisplayName(), err)
		}
	}

	return arbs, nil
}

// formatKickoff converts a provider kickoff instant to the display timezone.
// A trailing "Z" is normalized to an explicit "+00:00" offset before parsing
// so both spellings of UTC parse identically.
func (s *Scanner) formatKickoff(raw string) (string, error) {
	normalized := strings.Replace(raw, "Z", "+00:00", 1)

	t, err := time.Parse(kickoffLayout, normalized)
	if err != nil {
		return "", fmt.Errorf("parse kickoff %q: %w", raw, err)
	}

	return t.In(s.sport.GetDisplayLocation()).Format(displayLayout), nil
}

// CacheKey derives the memo key for a (credential, effective stake) pair.
// The credential is hashed so the raw key never appears in Redis or logs.
func CacheKey(apiKey string, totalStake float64) string {
	sum := sha256.Sum256([]byte(apiKey))
	return fmt.Sprintf("arbs:scan:%s:%.0f", hex.EncodeToString(sum[:8]), totalStake)
}
