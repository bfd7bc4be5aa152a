package domain

import "github.com/franchizelabs/franchize/internal/config"

// Tier maps a funding-ratio band to an investor share of after-fee revenue.
// A ratio strictly below Below selects the tier; the Below == 0 tier is the
// catch-all for a fully funded reserve. Upper bounds are exclusive on
// purpose: a ratio of exactly 0.25 belongs to LOW, and exactly 0.75 to
// FULL_RESERVE. Financial outcomes must reproduce across implementations,
// so this is not approximate.
type Tier struct {
	Below            float64
	InvestorShareBps int64
	Rule             Rule
}

// Policy carries the distribution constants. Royalty and platform rates are
// defaults; brands may override them per record.
type Policy struct {
	RoyaltyRateBps  int64
	PlatformRateBps int64
	Tiers           []Tier
}

func PolicyFromConfig(cfg *config.Config) Policy {
	e := cfg.Engine
	return Policy{
		RoyaltyRateBps:  e.RoyaltyRateBps,
		PlatformRateBps: e.PlatformRateBps,
		Tiers: []Tier{
			{Below: e.CriticalBelow, InvestorShareBps: e.CriticalInvestorBps, Rule: RuleCritical},
			{Below: e.LowBelow, InvestorShareBps: e.LowInvestorBps, Rule: RuleLow},
			{Below: e.BuildingBelow, InvestorShareBps: e.BuildingInvestorBps, Rule: RuleBuilding},
			{Below: 0, InvestorShareBps: e.FullReserveInvestorBps, Rule: RuleFullReserve},
		},
	}
}

// TierFor selects the tier for a clamped funding ratio. The lower the
// reserve, the more of the split it keeps: the operating buffer is refilled
// before capital is rewarded.
func (p Policy) TierFor(ratio float64) Tier {
	for _, t := range p.Tiers {
		if t.Below > 0 && ratio < t.Below {
			return t
		}
	}
	return p.Tiers[len(p.Tiers)-1]
}
