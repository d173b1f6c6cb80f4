package soccer

import (
	"fmt"
	"time"
)

// Module implements the SportModule interface for three-way soccer
// match-result markets
type Module struct {
	config   *Config
	location *time.Location
}

// NewModule creates a new soccer sport module with the default configuration
func NewModule() (*Module, error) {
	config := DefaultConfig()

	loc, err := time.LoadLocation(config.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("load display timezone %s: %w", config.DisplayTimezone, err)
	}

	return &Module{
		config:   config,
		location: loc,
	}, nil
}

// GetSportKey returns the provider sport identifier
func (m *Module) GetSportKey() string {
	return m.config.SportKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// GetRegions returns the bookmaker regions to request
func (m *Module) GetRegions() []string {
	return m.config.Regions
}

// GetBookmakers returns the bookmaker allow-list
func (m *Module) GetBookmakers() []string {
	return m.config.Bookmakers
}

// GetMarketKey returns the market type token
func (m *Module) GetMarketKey() string {
	return m.config.MarketKey
}

// GetDisplayLocation returns the timezone kickoff times are rendered in
func (m *Module) GetDisplayLocation() *time.Location {
	return m.location
}

// GetCacheTTL returns how long scan results stay valid
func (m *Module) GetCacheTTL() time.Duration {
	return m.config.CacheTTL
}

// DefaultBaseStake returns the base stake used when the caller supplies none
func (m *Module) DefaultBaseStake() float64 {
	return m.config.Stake.DefaultBase
}

// ValidateStake rejects base stakes outside the configured bounds
func (m *Module) ValidateStake(stake float64) error {
	if stake < m.config.Stake.MinBase || stake > m.config.Stake.MaxBase {
		return fmt.Errorf("base stake %.0f out of range [%.0f, %.0f]",
			stake, m.config.Stake.MinBase, m.config.Stake.MaxBase)
	}
	return nil
}

// ValidateMultiplier rejects multipliers outside the allowed set
func (m *Module) ValidateMultiplier(multiplier int) error {
	for _, allowed := range m.config.Stake.Multipliers {
		if multiplier == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid stake multiplier %d, allowed: %v", multiplier, m.config.Stake.Multipliers)
}
