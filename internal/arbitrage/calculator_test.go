package arbitrage

import (
	"math"
	"testing"

	"github.com/XavierBriggs/Midas/pkg/models"
	"github.com/XavierBriggs/Midas/pkg/testutil"
)

func TestEvaluate_ArbitrageScenario(t *testing.T) {
	// impliedSum = 0.40 + 0.2941 + 0.2381 = 0.9322
	plan := Evaluate(testutil.ArbMarketOdds(), 1000)
	if plan == nil {
		t.Fatal("expected a stake plan, got nil")
	}

	wantStakes := map[models.Outcome]float64{
		models.OutcomeHome: 429,
		models.OutcomeDraw: 316,
		models.OutcomeAway: 255,
	}
	for k, want := range wantStakes {
		if plan.Stakes[k] != want {
			t.Errorf("stake[%s] = %v, want %v", k, plan.Stakes[k], want)
		}
	}

	if plan.TotalStake != 1000 {
		t.Errorf("total stake = %v, want 1000", plan.TotalStake)
	}
	if plan.Payout != 1073 {
		t.Errorf("payout = %v, want 1073", plan.Payout)
	}
	if plan.Profit != 73 {
		t.Errorf("profit = %v, want 73", plan.Profit)
	}
	if plan.ROI != 7.27 {
		t.Errorf("roi = %v, want 7.27", plan.ROI)
	}
}

func TestEvaluate_EqualPayoutInvariant(t *testing.T) {
	// Every outcome must pay out the same amount before display rounding;
	// that is the defining property of the split.
	inputs := []struct {
		name  string
		odds  map[models.Outcome]float64
		total float64
	}{
		{"golden scenario", testutil.ArbMarketOdds(), 1000},
		{"tight window", map[models.Outcome]float64{
			models.OutcomeHome: 3.10,
			models.OutcomeDraw: 3.55,
			models.OutcomeAway: 3.45,
		}, 2500},
		{"long shot away", map[models.Outcome]float64{
			models.OutcomeHome: 1.50,
			models.OutcomeDraw: 6.00,
			models.OutcomeAway: 12.00,
		}, 300},
	}

	for _, tt := range inputs {
		t.Run(tt.name, func(t *testing.T) {
			impliedSum := 0.0
			for _, o := range tt.odds {
				impliedSum += 1 / o
			}
			if impliedSum >= 1 {
				t.Fatalf("bad fixture: impliedSum = %v", impliedSum)
			}

			stakes := exactStakes(tt.odds, tt.total, impliedSum)

			reference := stakes[models.OutcomeHome] * tt.odds[models.OutcomeHome]
			for k, stake := range stakes {
				payout := stake * tt.odds[k]
				if math.Abs(payout-reference) > 1e-9 {
					t.Errorf("payout[%s] = %v, differs from home payout %v", k, payout, reference)
				}
			}

			// Display rounding keeps each per-outcome payout within one unit
			plan := Evaluate(tt.odds, tt.total)
			if plan == nil {
				t.Fatal("expected a stake plan, got nil")
			}
			for k, stake := range stakes {
				if math.Abs(math.Round(stake*tt.odds[k])-plan.Payout) > 1 {
					t.Errorf("rounded payout[%s] drifts more than 1 unit from %v", k, plan.Payout)
				}
			}
		})
	}
}

func TestEvaluate_RoundMarketRejected(t *testing.T) {
	// Best of BookA/BookB/BookC: home=2.10, draw=3.60, away=4.00.
	// impliedSum = 0.4762 + 0.2778 + 0.25 = 1.0040, so no arbitrage.
	odds := map[models.Outcome]float64{
		models.OutcomeHome: 2.10,
		models.OutcomeDraw: 3.60,
		models.OutcomeAway: 4.00,
	}

	if plan := Evaluate(odds, 1000); plan != nil {
		t.Errorf("expected nil for impliedSum >= 1, got %+v", plan)
	}
}

func TestEvaluate_NoArbitrageRejection(t *testing.T) {
	tests := []struct {
		name string
		odds map[models.Outcome]float64
	}{
		{"perfectly round market", map[models.Outcome]float64{
			models.OutcomeHome: 3.00,
			models.OutcomeDraw: 3.00,
			models.OutcomeAway: 3.00,
		}},
		{"typical bookmaker margin", map[models.Outcome]float64{
			models.OutcomeHome: 1.90,
			models.OutcomeDraw: 3.30,
			models.OutcomeAway: 3.80,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if plan := Evaluate(tt.odds, 1000); plan != nil {
				t.Errorf("expected nil, got %+v", plan)
			}
		})
	}
}

func TestEvaluate_UnquotedOutcomeRejected(t *testing.T) {
	tests := []struct {
		name string
		odds map[models.Outcome]float64
	}{
		{"zero home", map[models.Outcome]float64{
			models.OutcomeHome: 0,
			models.OutcomeDraw: 50,
			models.OutcomeAway: 50,
		}},
		{"zero draw", map[models.Outcome]float64{
			models.OutcomeHome: 50,
			models.OutcomeDraw: 0,
			models.OutcomeAway: 50,
		}},
		{"negative away", map[models.Outcome]float64{
			models.OutcomeHome: 50,
			models.OutcomeDraw: 50,
			models.OutcomeAway: -1,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if plan := Evaluate(tt.odds, 1000); plan != nil {
				t.Errorf("expected nil when an outcome has odds <= 0, got %+v", plan)
			}
		})
	}
}

func TestEvaluate_NonPositiveStakeRejected(t *testing.T) {
	for _, total := range []float64{0, -100} {
		if plan := Evaluate(testutil.ArbMarketOdds(), total); plan != nil {
			t.Errorf("Evaluate(_, %v) = %+v, want nil", total, plan)
		}
	}
}

func TestEvaluate_StakesScaleWithTotal(t *testing.T) {
	small := Evaluate(testutil.ArbMarketOdds(), 1000)
	large := Evaluate(testutil.ArbMarketOdds(), 3000)
	if small == nil || large == nil {
		t.Fatal("expected plans for both stakes")
	}

	if large.TotalStake != 3*small.TotalStake {
		t.Errorf("total stake did not scale: %v vs %v", large.TotalStake, small.TotalStake)
	}
	if large.ROI != small.ROI {
		t.Errorf("roi should be stake-invariant: %v vs %v", large.ROI, small.ROI)
	}
}
