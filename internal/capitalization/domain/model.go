// Package domain holds the capitalization structure established for a
// franchise at funding time: total shares, share price and the planned
// cost breakdown. All monetary values are int64 minor units.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrBelowMinimumArea = errors.New("leased area below brand minimum")
	ErrFrozen           = errors.New("capitalization frozen after share issuance")
	ErrNotFound         = errors.New("capitalization not found")
)

type Capitalization struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	FranchiseID snowflake.ID `json:"franchise_id" gorm:"not null;uniqueIndex"`
	TemplateID  snowflake.ID `json:"template_id" gorm:"not null"`

	LeasedAreaSqm float64 `json:"leased_area_sqm" gorm:"not null"`
	AreaRatio     float64 `json:"area_ratio" gorm:"not null"`

	FranchiseFeeCents    int64 `json:"franchise_fee_cents" gorm:"not null"`
	SetupCostCents       int64 `json:"setup_cost_cents" gorm:"not null"`
	WorkingCapitalCents  int64 `json:"working_capital_cents" gorm:"not null"`
	TotalInvestmentCents int64 `json:"total_investment_cents" gorm:"not null"`

	TotalShares     int64  `json:"total_shares" gorm:"not null"`
	SharePriceCents int64  `json:"share_price_cents" gorm:"not null"`
	Currency        string `json:"currency" gorm:"type:text;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Capitalization) TableName() string { return "capitalizations" }
