// Package domain holds the working-capital reserve: one mutable balance per
// franchise, targeted at the capitalization's planned working capital.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrAccountNotFound     = errors.New("reserve account not found")
	ErrInsufficientReserve = errors.New("insufficient reserve balance")
	ErrInvalidAmount       = errors.New("amount must not be negative")
)

type ReserveAccount struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	FranchiseID snowflake.ID `json:"franchise_id" gorm:"not null;uniqueIndex"`

	BalanceCents int64 `json:"balance_cents" gorm:"not null;default:0"`
	TargetCents  int64 `json:"target_cents" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (ReserveAccount) TableName() string { return "reserve_accounts" }

// FundingRatio is balance/target clamped to [0,1]. Balances above target
// report 1; the distribution tiers only distinguish "at or above full"
// from the lower bands. A zero target counts as fully funded.
func (a ReserveAccount) FundingRatio() float64 {
	if a.TargetCents <= 0 {
		return 1
	}
	ratio := float64(a.BalanceCents) / float64(a.TargetCents)
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
