// Package arbitrage tests best-price sets for sure-win conditions and
// computes the stake split that locks in equal profit on every outcome.
package arbitrage

import (
	"math"

	"github.com/XavierBriggs/Midas/pkg/models"
)

// StakePlan is the result of a successful arbitrage evaluation. Stakes,
// TotalStake, Payout and Profit are rounded to whole monetary units, ROI to
// two decimal places. Rounding happens only at this boundary; the internal
// stake computation is exact so the equal-payout guarantee is not eroded.
type StakePlan struct {
	Stakes     map[models.Outcome]float64
	TotalStake float64
	Payout     float64
	Profit     float64
	ROI        float64
}

// Evaluate tests whether the given best odds admit a guaranteed-profit stake
// split of totalStake. It returns nil when no opportunity exists: any outcome
// with odds <= 0 (nobody quoted it), a non-positive total stake, or an
// implied-probability sum of 1 or more (the bookmaker margin eats the edge).
func Evaluate(odds map[models.Outcome]float64, totalStake float64) *StakePlan {
	if totalStake <= 0 {
		return nil
	}

	for _, o := range odds {
		if o <= 0 {
			return nil
		}
	}

	impliedSum := 0.0
	for _, o := range odds {
		impliedSum += 1 / o
	}

	if impliedSum >= 1 {
		return nil
	}

	stakes := exactStakes(odds, totalStake, impliedSum)

	// stake * odds is identical for every outcome by construction; the home
	// leg is as good as any.
	payout := stakes[models.OutcomeHome] * odds[models.OutcomeHome]
	profit := payout - totalStake

	rounded := make(map[models.Outcome]float64, len(stakes))
	sum := 0.0
	for k, v := range stakes {
		rounded[k] = math.Round(v)
		sum += v
	}

	return &StakePlan{
		Stakes:     rounded,
		TotalStake: math.Round(sum),
		Payout:     math.Round(payout),
		Profit:     math.Round(profit),
		ROI:        math.Round(profit/totalStake*100*100) / 100,
	}
}

// exactStakes distributes totalStake proportionally to implied probability so
// every outcome pays out the same amount
func exactStakes(odds map[models.Outcome]float64, totalStake, impliedSum float64) map[models.Outcome]float64 {
	stakes := make(map[models.Outcome]float64, len(odds))
	for k, o := range odds {
		stakes[k] = (totalStake / o) / impliedSum
	}
	return stakes
}
