// Package domain contains the brand catalog: the brand records and the
// cost templates a franchise capitalization is derived from.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrBrandNotFound    = errors.New("brand not found")
	ErrTemplateNotFound = errors.New("cost template not found")
	ErrInvalidTemplate  = errors.New("invalid cost template")
	ErrSlugTaken        = errors.New("brand slug already in use")
)

type Brand struct {
	ID   snowflake.ID `json:"id" gorm:"primaryKey"`
	Name string       `json:"name" gorm:"type:text;not null"`
	Slug string       `json:"slug" gorm:"type:text;not null;uniqueIndex"`

	// Fee rates in basis points. Zero means "use the platform default".
	RoyaltyRateBps  int64 `json:"royalty_rate_bps" gorm:"not null;default:0"`
	PlatformRateBps int64 `json:"platform_rate_bps" gorm:"not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Brand) TableName() string { return "brands" }

// CostTemplate is the brand-level cost sheet. Rows are immutable; revising
// a template means appending a new row with a later EffectiveFrom.
type CostTemplate struct {
	ID      snowflake.ID `json:"id" gorm:"primaryKey"`
	BrandID snowflake.ID `json:"brand_id" gorm:"not null;index"`

	MinAreaSqm          float64 `json:"min_area_sqm" gorm:"not null"`
	FranchiseFeeCents   int64   `json:"franchise_fee_cents" gorm:"not null"`
	SetupCostCents      int64   `json:"setup_cost_cents" gorm:"not null"`
	WorkingCapitalCents int64   `json:"working_capital_cents" gorm:"not null"`
	Currency            string  `json:"currency" gorm:"type:text;not null"`

	EffectiveFrom time.Time `json:"effective_from" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`
}

func (CostTemplate) TableName() string { return "cost_templates" }
