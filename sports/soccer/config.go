package soccer

import (
	"time"
)

// Config contains soccer-specific scan configuration
type Config struct {
	// Sport identification
	SportKey    string
	DisplayName string

	// Regions to request from the provider
	Regions []string

	// Bookmaker allow-list sent with every odds request
	Bookmakers []string

	// Market type token; match-result three-way is "h2h"
	MarketKey string

	// Timezone kickoff times are rendered in
	DisplayTimezone string

	// How long a scan result stays valid before a fresh fetch
	CacheTTL time.Duration

	// Stake input bounds and multipliers
	Stake StakeConfig
}

// StakeConfig bounds the user-supplied stake inputs
type StakeConfig struct {
	MinBase     float64
	MaxBase     float64
	DefaultBase float64
	Multipliers []int
}

// DefaultConfig returns the production soccer configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:    "soccer",
		DisplayName: "Soccer",
		Regions:     []string{"uk", "us", "eu", "au"},

		Bookmakers: []string{
			"williamhill", "ladbrokes", "bet365", "skybet", "betfair",
			"bwin", "unibet", "betvictor", "coral", "888sport",
			"betfred", "betway", "marathonbet", "pinnacle", "matchbook",
			"boylesports", "10bet", "betbright", "parimatch", "betradar",
		},

		MarketKey:       "h2h",
		DisplayTimezone: "Asia/Kolkata",
		CacheTTL:        15 * time.Minute,

		Stake: StakeConfig{
			MinBase:     100,
			MaxBase:     10_000,
			DefaultBase: 1_000,
			Multipliers: []int{1, 2, 3},
		},
	}
}
