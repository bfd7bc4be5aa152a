package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type DistributeRequest struct {
	FranchiseID       snowflake.ID `json:"-"`
	Period            string       `json:"period" binding:"required"`
	GrossRevenueCents int64        `json:"gross_revenue_cents"`
	TotalExpenseCents int64        `json:"total_expense_cents"`
}

type Service interface {
	Distribute(ctx context.Context, req DistributeRequest) (*PayoutRecord, error)
	PayoutHistory(ctx context.Context, franchiseID snowflake.ID) ([]PayoutRecord, error)
	PayoutBreakdown(ctx context.Context, recordID snowflake.ID) (*PayoutRecord, []InvestorPayout, error)
}
