package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

type CreateBrandRequest struct {
	Name            string `json:"name" binding:"required"`
	RoyaltyRateBps  int64  `json:"royalty_rate_bps"`
	PlatformRateBps int64  `json:"platform_rate_bps"`
}

type CreateTemplateRequest struct {
	BrandID             snowflake.ID `json:"-"`
	MinAreaSqm          float64      `json:"min_area_sqm" binding:"required"`
	FranchiseFeeCents   int64        `json:"franchise_fee_cents"`
	SetupCostCents      int64        `json:"setup_cost_cents"`
	WorkingCapitalCents int64        `json:"working_capital_cents"`
	Currency            string       `json:"currency"`
	EffectiveFrom       *time.Time   `json:"effective_from"`
}

type Service interface {
	CreateBrand(ctx context.Context, req CreateBrandRequest) (*Brand, error)
	GetBrand(ctx context.Context, id snowflake.ID) (*Brand, error)
	ListBrands(ctx context.Context) ([]Brand, error)

	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*CostTemplate, error)
	CurrentTemplate(ctx context.Context, brandID snowflake.ID) (*CostTemplate, error)
	ListTemplates(ctx context.Context, brandID snowflake.ID) ([]CostTemplate, error)
}
