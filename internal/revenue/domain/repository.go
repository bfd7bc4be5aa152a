package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, tx *gorm.DB, e RevenueEntry) error
	ListByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]RevenueEntry, error)
	AggregatePeriod(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, period string) (PeriodAggregate, error)

	// ListUndistributed returns per-period aggregates for ongoing
	// franchises with revenue before the given period and no payout record
	// yet.
	ListUndistributed(ctx context.Context, tx *gorm.DB, beforePeriod string) ([]PeriodAggregate, error)
}
