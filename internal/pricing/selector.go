// Package pricing selects the best available price per outcome across all
// bookmakers quoting a match.
package pricing

import (
	"github.com/XavierBriggs/Midas/pkg/models"
)

// outcomeAliases normalizes vendor outcome labels to canonical outcomes.
// Sources label the same semantic outcome differently ("Home" vs "1").
// Labels outside this table are skipped, not an error.
var outcomeAliases = map[string]models.Outcome{
	"Home": models.OutcomeHome,
	"Draw": models.OutcomeDraw,
	"Away": models.OutcomeAway,
	"1":    models.OutcomeHome,
	"X":    models.OutcomeDraw,
	"2":    models.OutcomeAway,
}

// SelectBestPrices reduces a match's bookmaker quotes to the highest decimal
// odds per outcome, recording which bookmaker offered each. The comparison is
// strictly greater, so when two bookmakers quote identical best odds the
// first one encountered keeps the slot. Outcomes nobody quoted stay at zero
// odds with an empty bookmaker name. Pure function of its input.
func SelectBestPrices(quotes []models.BookmakerQuote) models.BestPriceSet {
	best := models.NewBestPriceSet()

	for _, quote := range quotes {
		for _, op := range quote.Outcomes {
			outcome, ok := outcomeAliases[op.Name]
			if !ok {
				continue
			}

			if op.Price > best[outcome].Odds {
				best[outcome] = models.BestPrice{
					Odds:      op.Price,
					Bookmaker: quote.Bookmaker,
				}
			}
		}
	}

	return best
}
