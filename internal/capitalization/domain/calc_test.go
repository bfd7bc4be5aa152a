package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
)

func testTemplate() branddomain.CostTemplate {
	return branddomain.CostTemplate{
		MinAreaSqm:          50,
		FranchiseFeeCents:   5_000_000,
		SetupCostCents:      15_000_000,
		WorkingCapitalCents: 10_000_000,
		Currency:            "USD",
	}
}

func TestComputeAtMinimumArea(t *testing.T) {
	cap, err := Compute(testTemplate(), 50)
	require.NoError(t, err)

	assert.Equal(t, 1.0, cap.AreaRatio)
	assert.Equal(t, int64(5_000_000), cap.FranchiseFeeCents)
	assert.Equal(t, int64(15_000_000), cap.SetupCostCents)
	assert.Equal(t, int64(10_000_000), cap.WorkingCapitalCents)
	assert.Equal(t, int64(30_000_000), cap.TotalInvestmentCents)
	assert.Equal(t, int64(300_000), cap.TotalShares)
	assert.Equal(t, int64(100), cap.SharePriceCents)
}

func TestComputeScalesWithArea(t *testing.T) {
	cap, err := Compute(testTemplate(), 60)
	require.NoError(t, err)

	assert.Equal(t, 1.2, cap.AreaRatio)
	// The franchise fee is a licensing charge and must not scale.
	assert.Equal(t, int64(5_000_000), cap.FranchiseFeeCents)
	assert.Equal(t, int64(18_000_000), cap.SetupCostCents)
	assert.Equal(t, int64(12_000_000), cap.WorkingCapitalCents)
	assert.Equal(t, int64(35_000_000), cap.TotalInvestmentCents)
	assert.Equal(t, int64(350_000), cap.TotalShares)
}

func TestComputeLineItemsSumToTotal(t *testing.T) {
	for _, area := range []float64{50, 53.7, 61.13, 88, 149.99} {
		cap, err := Compute(testTemplate(), area)
		require.NoError(t, err)
		assert.Equal(t, cap.TotalInvestmentCents,
			cap.FranchiseFeeCents+cap.SetupCostCents+cap.WorkingCapitalCents,
			"area %.2f", area)
	}
}

func TestComputeRejectsBelowMinimumArea(t *testing.T) {
	_, err := Compute(testTemplate(), 49.9)
	require.ErrorIs(t, err, ErrBelowMinimumArea)

	_, err = Compute(testTemplate(), 0)
	require.ErrorIs(t, err, ErrBelowMinimumArea)
}

func TestComputeRoundsHalfUp(t *testing.T) {
	tpl := branddomain.CostTemplate{
		MinAreaSqm:          50,
		FranchiseFeeCents:   100,
		SetupCostCents:      333,
		WorkingCapitalCents: 333,
		Currency:            "USD",
	}

	// ratio 1.5: 333 * 1.5 = 499.5, half-up to 500 on each line.
	cap, err := Compute(tpl, 75)
	require.NoError(t, err)
	assert.Equal(t, int64(500), cap.SetupCostCents)
	assert.Equal(t, int64(500), cap.WorkingCapitalCents)
	assert.Equal(t, int64(1100), cap.TotalInvestmentCents)
	assert.Equal(t, int64(11), cap.TotalShares)
	assert.Equal(t, int64(100), cap.SharePriceCents)
}

func TestComputeTinyTotalStillIssuesOneShare(t *testing.T) {
	tpl := branddomain.CostTemplate{
		MinAreaSqm:        10,
		FranchiseFeeCents: 75,
		Currency:          "USD",
	}

	cap, err := Compute(tpl, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cap.TotalShares)
	assert.Equal(t, int64(75), cap.SharePriceCents)
}
