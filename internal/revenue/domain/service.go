package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type IngestRequest struct {
	FranchiseID  snowflake.ID   `json:"-"`
	Period       string         `json:"period" binding:"required"`
	Source       string         `json:"source"`
	GrossCents   int64          `json:"gross_cents"`
	ExpenseCents int64          `json:"expense_cents"`
	Metadata     map[string]any `json:"metadata"`
}

type Service interface {
	Ingest(ctx context.Context, req IngestRequest) (*RevenueEntry, error)
	EntriesOf(ctx context.Context, franchiseID snowflake.ID) ([]RevenueEntry, error)
	PeriodSummary(ctx context.Context, franchiseID snowflake.ID, period string) (PeriodAggregate, error)
}
