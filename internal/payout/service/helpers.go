package service

import (
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

// applyBps returns round-half-up(amount * bps / 10000) for non-negative
// amounts. Pure integer arithmetic so repeated runs cannot drift.
func applyBps(amountCents, bps int64) int64 {
	return (amountCents*bps + 5000) / 10000
}

type payoutLine struct {
	InvestorID  string
	SharesHeld  int64
	AmountCents int64
}

// splitProRata divides toInvestorsCents across holdings in proportion to
// shares held. Each line floors its share; the remainder cents go to the
// largest holder so the lines always sum exactly to toInvestorsCents.
// Holdings are expected largest-first (repository order).
func splitProRata(toInvestorsCents int64, holdings []ledgerdomain.InvestorHolding) []payoutLine {
	var totalShares int64
	for _, h := range holdings {
		totalShares += h.TotalShares
	}
	if totalShares == 0 || toInvestorsCents <= 0 {
		return nil
	}

	lines := make([]payoutLine, 0, len(holdings))
	var allocated int64
	for _, h := range holdings {
		amount := toInvestorsCents * h.TotalShares / totalShares
		allocated += amount
		lines = append(lines, payoutLine{
			InvestorID:  h.InvestorID,
			SharesHeld:  h.TotalShares,
			AmountCents: amount,
		})
	}

	if remainder := toInvestorsCents - allocated; remainder > 0 && len(lines) > 0 {
		lines[0].AmountCents += remainder
	}
	return lines
}
