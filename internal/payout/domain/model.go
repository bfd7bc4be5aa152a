// Package domain contains the revenue distribution output: append-only
// payout records and their pro-rata investor breakdown. Records are the
// financial audit trail and are never mutated or deleted.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrNotOperational        = errors.New("franchise is not operational")
	ErrDuplicatePeriod       = errors.New("period already distributed")
	ErrNonPositiveNetRevenue = errors.New("net revenue must be positive")
	ErrRecordNotFound        = errors.New("payout record not found")
)

// Rule names the tier selected for a distribution run.
type Rule string

const (
	RuleCritical    Rule = "CRITICAL"
	RuleLow         Rule = "LOW"
	RuleBuilding    Rule = "BUILDING"
	RuleFullReserve Rule = "FULL_RESERVE"
)

type PayoutRecord struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	FranchiseID snowflake.ID `json:"franchise_id" gorm:"not null;index;uniqueIndex:idx_payout_franchise_period"`
	// Period is the caller-supplied period key, unique per franchise. It is
	// the idempotency guard against double-processing a day's revenue.
	Period string `json:"period" gorm:"type:text;not null;uniqueIndex:idx_payout_franchise_period"`

	GrossRevenueCents int64 `json:"gross_revenue_cents" gorm:"not null"`
	TotalExpenseCents int64 `json:"total_expense_cents" gorm:"not null"`
	NetRevenueCents   int64 `json:"net_revenue_cents" gorm:"not null"`

	RoyaltyCents     int64 `json:"royalty_cents" gorm:"not null"`
	PlatformFeeCents int64 `json:"platform_fee_cents" gorm:"not null"`
	AfterFeesCents   int64 `json:"after_fees_cents" gorm:"not null"`

	ToInvestorsCents int64 `json:"to_investors_cents" gorm:"not null"`
	ToReserveCents   int64 `json:"to_reserve_cents" gorm:"not null"`

	DistributionRule  Rule    `json:"distribution_rule" gorm:"type:text;not null"`
	ReserveRatioAtRun float64 `json:"reserve_ratio_at_run" gorm:"not null"`
	SharesIssuedAtRun int64   `json:"shares_issued_at_run" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (PayoutRecord) TableName() string { return "payout_records" }

// InvestorPayout is one investor's slice of a record's ToInvestorsCents,
// handed to the payment-execution collaborator. The engine performs no
// transfers itself.
type InvestorPayout struct {
	ID             snowflake.ID `json:"id" gorm:"primaryKey"`
	PayoutRecordID snowflake.ID `json:"payout_record_id" gorm:"not null;index"`
	FranchiseID    snowflake.ID `json:"franchise_id" gorm:"not null;index"`
	InvestorID     string       `json:"investor_id" gorm:"type:text;not null"`

	SharesHeld  int64 `json:"shares_held" gorm:"not null"`
	AmountCents int64 `json:"amount_cents" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (InvestorPayout) TableName() string { return "investor_payouts" }
