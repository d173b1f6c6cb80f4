package contracts

import "time"

// SportModule defines sport-specific scan configuration. This keeps the
// scanner generic so additional sports can be registered without changing it.
type SportModule interface {
	// GetSportKey returns the provider identifier for this sport (e.g., "soccer")
	GetSportKey() string

	// GetDisplayName returns the human-readable name
	GetDisplayName() string

	// GetRegions returns the bookmaker regions to request
	GetRegions() []string

	// GetBookmakers returns the bookmaker allow-list sent to the provider
	GetBookmakers() []string

	// GetMarketKey returns the market type token (match-result is "h2h")
	GetMarketKey() string

	// GetDisplayLocation returns the timezone kickoff times are rendered in
	GetDisplayLocation() *time.Location

	// GetCacheTTL returns how long scan results stay valid
	GetCacheTTL() time.Duration

	// DefaultBaseStake returns the base stake used when the caller supplies none
	DefaultBaseStake() float64

	// ValidateStake rejects base stakes outside the configured bounds
	ValidateStake(stake float64) error

	// ValidateMultiplier rejects stake multipliers outside the allowed set
	ValidateMultiplier(multiplier int) error
}
