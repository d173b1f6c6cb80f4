package testutil

import (
	"context"
	"sync"

	"github.com/XavierBriggs/Midas/pkg/contracts"
	"github.com/XavierBriggs/Midas/pkg/models"
)

// NewTestQuote creates a bookmaker quote using the vendor's "Home"/"Draw"/
// "Away" labels
func NewTestQuote(bookmaker string, home, draw, away float64) models.BookmakerQuote {
	return models.BookmakerQuote{
		Bookmaker: bookmaker,
		Outcomes: []models.OutcomePrice{
			{Name: "Home", Price: home},
			{Name: "Draw", Price: draw},
			{Name: "Away", Price: away},
		},
	}
}

// NewTestMatch creates a match record with the given quotes
func NewTestMatch(homeTeam, awayTeam, commenceTime string, quotes ...models.BookmakerQuote) models.MatchRecord {
	return models.MatchRecord{
		ID:           homeTeam + "-" + awayTeam,
		SportKey:     "soccer",
		HomeTeam:     homeTeam,
		AwayTeam:     awayTeam,
		CommenceTime: commenceTime,
		Quotes:       quotes,
	}
}

// RoundMarketQuotes returns a three-book market whose implied-probability sum
// sits just above 1, so no arbitrage exists. Best prices are home=2.10
// (BookA), draw=3.60 (BookB), away=4.00 (BookC).
func RoundMarketQuotes() []models.BookmakerQuote {
	return []models.BookmakerQuote{
		NewTestQuote("BookA", 2.10, 3.40, 3.80),
		NewTestQuote("BookB", 2.05, 3.60, 3.50),
		NewTestQuote("BookC", 2.00, 3.30, 4.00),
	}
}

// ArbMarketOdds returns a best-price set with a guaranteed-profit window:
// implied sum ~0.9322
func ArbMarketOdds() map[models.Outcome]float64 {
	return map[models.Outcome]float64{
		models.OutcomeHome: 2.50,
		models.OutcomeDraw: 3.40,
		models.OutcomeAway: 4.20,
	}
}

// MockOddsProvider is a test provider that returns predetermined matches and
// counts fetches so cache idempotence can be asserted
type MockOddsProvider struct {
	FetchMatchesFunc func(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error)

	mu         sync.Mutex
	fetchCalls int
}

// Ensure MockOddsProvider implements OddsProvider
var _ contracts.OddsProvider = (*MockOddsProvider)(nil)

func (m *MockOddsProvider) FetchMatches(ctx context.Context, apiKey string, opts *models.FetchOptions) ([]models.MatchRecord, error) {
	m.mu.Lock()
	m.fetchCalls++
	m.mu.Unlock()

	if m.FetchMatchesFunc != nil {
		return m.FetchMatchesFunc(ctx, apiKey, opts)
	}
	return []models.MatchRecord{}, nil
}

func (m *MockOddsProvider) GetRateLimits() *models.RateLimits {
	return &models.RateLimits{
		RequestsRemaining: 500,
		RequestsUsed:      0,
	}
}

// FetchCalls reports how many times FetchMatches was invoked
func (m *MockOddsProvider) FetchCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCalls
}

// MemoryCache is an in-process ScanCache for unit tests
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]models.ArbitrageOpportunity
}

// Ensure MemoryCache implements ScanCache
var _ contracts.ScanCache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty in-process cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string][]models.ArbitrageOpportunity),
	}
}

func (c *MemoryCache) Lookup(ctx context.Context, key string) ([]models.ArbitrageOpportunity, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	arbs, ok := c.entries[key]
	return arbs, ok, nil
}

func (c *MemoryCache) Save(ctx context.Context, key string, arbs []models.ArbitrageOpportunity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = arbs
	return nil
}
