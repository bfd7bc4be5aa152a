// Package domain contains the authoritative share ledger: append-only
// purchase rows issued against a franchise's capitalization.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrInvalidQuantity    = errors.New("requested shares must be at least 1")
	ErrInsufficientSupply = errors.New("insufficient share supply")
	ErrBelowMinimumStake  = errors.New("request below minimum stake floor")
)

// Share is one admitted purchase. Rows are immutable; the franchise's
// position is always the sum over its rows.
type Share struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	FranchiseID snowflake.ID `json:"franchise_id" gorm:"not null;index"`
	InvestorID  string       `json:"investor_id" gorm:"type:text;not null;index"`

	SharesPurchased int64 `json:"shares_purchased" gorm:"not null"`
	// SharePriceCents is the price at time of purchase. It can differ from
	// the current template price if the capitalization was revised before
	// this purchase, never after.
	SharePriceCents  int64  `json:"share_price_cents" gorm:"not null"`
	TotalAmountCents int64  `json:"total_amount_cents" gorm:"not null"`
	TransactionRef   string `json:"transaction_ref" gorm:"type:text;not null"`

	PurchasedAt time.Time `json:"purchased_at" gorm:"not null"`
}

func (Share) TableName() string { return "shares" }

// InvestorHolding is the aggregation of all Share rows for one
// (franchise, investor) pair. Derived, never persisted.
type InvestorHolding struct {
	FranchiseID        snowflake.ID `json:"franchise_id"`
	InvestorID         string       `json:"investor_id"`
	TotalShares        int64        `json:"total_shares"`
	TotalInvestedCents int64        `json:"total_invested_cents"`
}

// Policy shapes purchase admission. MinStakeBps is the smallest single
// request as a share of total supply, in basis points; 0 disables the floor.
type Policy struct {
	MinStakeBps int64
}

// MinStakeFloor returns the smallest admissible request for a supply of
// totalShares, ceil(totalShares * bps / 10000).
func (p Policy) MinStakeFloor(totalShares int64) int64 {
	if p.MinStakeBps <= 0 {
		return 1
	}
	floor := (totalShares*p.MinStakeBps + 9999) / 10000
	if floor < 1 {
		floor = 1
	}
	return floor
}
