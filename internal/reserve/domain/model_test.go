package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundingRatio(t *testing.T) {
	acct := ReserveAccount{BalanceCents: 25_000, TargetCents: 100_000}
	assert.Equal(t, 0.25, acct.FundingRatio())

	acct.BalanceCents = 0
	assert.Equal(t, 0.0, acct.FundingRatio())

	acct.BalanceCents = 100_000
	assert.Equal(t, 1.0, acct.FundingRatio())

	// Overfunded reserves clamp to 1 so tier selection stays in range.
	acct.BalanceCents = 150_000
	assert.Equal(t, 1.0, acct.FundingRatio())
}

func TestFundingRatioWithoutTarget(t *testing.T) {
	acct := ReserveAccount{BalanceCents: 500, TargetCents: 0}
	assert.Equal(t, 1.0, acct.FundingRatio())
}
