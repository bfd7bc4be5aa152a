package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franchizelabs/franchize/internal/config"
)

func defaultPolicy() Policy {
	return PolicyFromConfig(&config.Config{
		Engine: config.EngineConfig{
			RoyaltyRateBps:         500,
			PlatformRateBps:        200,
			CriticalBelow:          0.25,
			LowBelow:               0.50,
			BuildingBelow:          0.75,
			CriticalInvestorBps:    2500,
			LowInvestorBps:         5000,
			BuildingInvestorBps:    7500,
			FullReserveInvestorBps: 10000,
		},
	})
}

func TestTierBoundariesAreExclusive(t *testing.T) {
	p := defaultPolicy()

	cases := []struct {
		ratio float64
		rule  Rule
		bps   int64
	}{
		{0.0, RuleCritical, 2500},
		{0.2499, RuleCritical, 2500},
		{0.25, RuleLow, 5000}, // boundary belongs to the higher tier
		{0.4999, RuleLow, 5000},
		{0.50, RuleBuilding, 7500},
		{0.7499, RuleBuilding, 7500},
		{0.75, RuleFullReserve, 10000},
		{1.0, RuleFullReserve, 10000},
	}

	for _, tc := range cases {
		tier := p.TierFor(tc.ratio)
		assert.Equal(t, tc.rule, tier.Rule, "ratio %.4f", tc.ratio)
		assert.Equal(t, tc.bps, tier.InvestorShareBps, "ratio %.4f", tc.ratio)
	}
}
