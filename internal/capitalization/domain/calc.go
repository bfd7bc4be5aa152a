package domain

import (
	"fmt"
	"math"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
)

// minorUnitsPerShare fixes the 1 share ≈ 1 currency unit convention.
const minorUnitsPerShare = 100

// Compute derives a capitalization from a brand cost template and the
// franchise's leased area. The franchise fee is a licensing charge and never
// scales; setup cost and working capital scale linearly with the area ratio,
// floored at 1.0 so leasing exactly the minimum area pays exactly the
// template cost. Each scaled line item is rounded independently so the
// displayed items sum exactly to the displayed total.
func Compute(t branddomain.CostTemplate, leasedAreaSqm float64) (Capitalization, error) {
	if leasedAreaSqm <= 0 || leasedAreaSqm < t.MinAreaSqm {
		return Capitalization{}, fmt.Errorf("%w: leased %.2f sqm, minimum %.2f sqm",
			ErrBelowMinimumArea, leasedAreaSqm, t.MinAreaSqm)
	}

	ratio := leasedAreaSqm / t.MinAreaSqm
	if ratio < 1.0 {
		ratio = 1.0
	}

	setup := roundHalfUp(float64(t.SetupCostCents) * ratio)
	working := roundHalfUp(float64(t.WorkingCapitalCents) * ratio)
	total := t.FranchiseFeeCents + setup + working

	totalShares := total / minorUnitsPerShare
	if totalShares < 1 {
		totalShares = 1
	}
	sharePrice := roundHalfUp(float64(total) / float64(totalShares))

	return Capitalization{
		TemplateID:           t.ID,
		LeasedAreaSqm:        leasedAreaSqm,
		AreaRatio:            ratio,
		FranchiseFeeCents:    t.FranchiseFeeCents,
		SetupCostCents:       setup,
		WorkingCapitalCents:  working,
		TotalInvestmentCents: total,
		TotalShares:          totalShares,
		SharePriceCents:      sharePrice,
		Currency:             t.Currency,
	}, nil
}

func roundHalfUp(raw float64) int64 {
	return int64(math.Floor(raw + 0.5))
}
