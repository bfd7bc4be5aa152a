package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	GetBrand(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*Brand, error)
	GetBrandBySlug(ctx context.Context, tx *gorm.DB, slug string) (*Brand, error)
	ListBrands(ctx context.Context, tx *gorm.DB) ([]Brand, error)
	InsertBrand(ctx context.Context, tx *gorm.DB, b Brand) error

	// EffectiveTemplate returns the latest template effective at the given
	// time for a brand, or nil when none exists.
	EffectiveTemplate(ctx context.Context, tx *gorm.DB, brandID snowflake.ID, at time.Time) (*CostTemplate, error)
	GetTemplate(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*CostTemplate, error)
	InsertTemplate(ctx context.Context, tx *gorm.DB, t CostTemplate) error
	ListTemplates(ctx context.Context, tx *gorm.DB, brandID snowflake.ID) ([]CostTemplate, error)
}
