package models

// Outcome identifies one side of a three-way match-result market
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeDraw Outcome = "draw"
	OutcomeAway Outcome = "away"
)

// Outcomes returns the three match-result outcomes in display order
func Outcomes() []Outcome {
	return []Outcome{OutcomeHome, OutcomeDraw, OutcomeAway}
}

// OutcomePrice is a single outcome/price pair as quoted by a bookmaker.
// Name carries the vendor's raw label ("Home", "1", "X", ...) and is
// normalized downstream by the price selector.
type OutcomePrice struct {
	Name  string
	Price float64 // Decimal odds
}

// BookmakerQuote is one bookmaker's match-result listing for a single match.
// Only the first market in the vendor listing is authoritative; bookmakers
// without any market entries never produce a quote.
type BookmakerQuote struct {
	Bookmaker string // Display name, e.g. "Pinnacle"
	Outcomes  []OutcomePrice
}

// BestPrice is the highest decimal odds seen for one outcome and the
// bookmaker that offered it
type BestPrice struct {
	Odds      float64 `json:"odds"`
	Bookmaker string  `json:"bookmaker"`
}

// BestPriceSet maps each outcome to the best price across all bookmakers
// quoting a match. An outcome nobody quoted keeps zero odds and an empty
// bookmaker name.
type BestPriceSet map[Outcome]BestPrice

// NewBestPriceSet returns a set with zero-valued entries for all three outcomes
func NewBestPriceSet() BestPriceSet {
	set := make(BestPriceSet, 3)
	for _, k := range Outcomes() {
		set[k] = BestPrice{}
	}
	return set
}

// Odds flattens the set to outcome -> decimal odds for the calculator
func (s BestPriceSet) Odds() map[Outcome]float64 {
	odds := make(map[Outcome]float64, len(s))
	for k, bp := range s {
		odds[k] = bp.Odds
	}
	return odds
}

// MatchRecord is one match as returned by the odds provider. CommenceTime is
// kept as the raw ISO-8601 instant; the scanner owns parsing and timezone
// conversion.
type MatchRecord struct {
	ID           string
	SportKey     string
	HomeTeam     string
	AwayTeam     string
	CommenceTime string
	Quotes       []BookmakerQuote
}

// ArbitrageOpportunity is one match where a sure-win stake split exists.
// Monetary fields are rounded to whole units for display, ROI to two
// decimal places. Immutable once built; discarded when the cache expires.
type ArbitrageOpportunity struct {
	Match      string              `json:"match"`   // "Home Team vs Away Team"
	Kickoff    string              `json:"kickoff"` // Display timezone, "02 Jan 15:04"
	Prices     BestPriceSet        `json:"prices"`
	Stakes     map[Outcome]float64 `json:"stakes"`
	TotalStake float64             `json:"total_stake"`
	Payout     float64             `json:"payout"`
	Profit     float64             `json:"profit"`
	ROI        float64             `json:"roi_pct"`
}

// FetchOptions contains parameters for a provider odds request
type FetchOptions struct {
	Sport      string
	Regions    []string
	Markets    []string
	Bookmakers []string // Allow-list of bookmaker keys
}

// RateLimits contains provider quota information taken from response headers
type RateLimits struct {
	RequestsRemaining int
	RequestsUsed      int
}
