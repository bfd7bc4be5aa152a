package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

func TestApplyBps(t *testing.T) {
	assert.Equal(t, int64(50_000), applyBps(1_000_000, 500))
	assert.Equal(t, int64(20_000), applyBps(1_000_000, 200))
	// 999 * 5% = 49.95, rounds half-up to 50.
	assert.Equal(t, int64(50), applyBps(999, 500))
	assert.Equal(t, int64(0), applyBps(0, 500))
	assert.Equal(t, int64(1_000_000), applyBps(1_000_000, 10000))
}

func TestSplitProRataExact(t *testing.T) {
	lines := splitProRata(232_500, []ledgerdomain.InvestorHolding{
		{InvestorID: "inv-a", TotalShares: 600},
		{InvestorID: "inv-b", TotalShares: 400},
	})

	assert.Len(t, lines, 2)
	assert.Equal(t, int64(139_500), lines[0].AmountCents)
	assert.Equal(t, int64(93_000), lines[1].AmountCents)
}

func TestSplitProRataRemainderGoesToLargestHolder(t *testing.T) {
	lines := splitProRata(100, []ledgerdomain.InvestorHolding{
		{InvestorID: "inv-a", TotalShares: 3},
		{InvestorID: "inv-b", TotalShares: 3},
		{InvestorID: "inv-c", TotalShares: 3},
	})

	assert.Equal(t, int64(34), lines[0].AmountCents)
	assert.Equal(t, int64(33), lines[1].AmountCents)
	assert.Equal(t, int64(33), lines[2].AmountCents)

	var sum int64
	for _, l := range lines {
		sum += l.AmountCents
	}
	assert.Equal(t, int64(100), sum)
}

func TestSplitProRataConservation(t *testing.T) {
	holdings := []ledgerdomain.InvestorHolding{
		{InvestorID: "inv-a", TotalShares: 713},
		{InvestorID: "inv-b", TotalShares: 211},
		{InvestorID: "inv-c", TotalShares: 76},
	}

	for _, amount := range []int64{1, 99, 1_000, 123_457, 930_001} {
		lines := splitProRata(amount, holdings)
		var sum int64
		for _, l := range lines {
			sum += l.AmountCents
		}
		assert.Equal(t, amount, sum, "amount %d", amount)
	}
}

func TestSplitProRataEmptyLedger(t *testing.T) {
	assert.Nil(t, splitProRata(1000, nil))
	assert.Nil(t, splitProRata(0, []ledgerdomain.InvestorHolding{{InvestorID: "inv-a", TotalShares: 10}}))
}
