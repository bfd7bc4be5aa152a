package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// TotalIssued sums shares_purchased over a franchise's rows.
	TotalIssued(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (int64, error)
	Insert(ctx context.Context, tx *gorm.DB, s Share) error
	ListByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]Share, error)
	HoldingOf(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, investorID string) (InvestorHolding, error)
	// HoldingsSnapshot returns every investor's aggregate position, largest
	// holding first. O(n) over share rows by design; the ledger stays the
	// single source of truth.
	HoldingsSnapshot(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]InvestorHolding, error)
}
