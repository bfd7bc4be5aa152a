// Package domain contains raw revenue reporting: per-period gross/expense
// entries that distribution runs aggregate over.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

var ErrInvalidEntry = errors.New("invalid revenue entry")

// RevenueEntry is one source's report for one period. Ingestion is
// idempotent on (franchise, period, source): re-sending a report is a
// no-op, not a double count.
type RevenueEntry struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	FranchiseID snowflake.ID `json:"franchise_id" gorm:"not null;index;uniqueIndex:idx_revenue_franchise_period_source"`
	Period      string       `json:"period" gorm:"type:text;not null;uniqueIndex:idx_revenue_franchise_period_source"`
	Source      string       `json:"source" gorm:"type:text;not null;uniqueIndex:idx_revenue_franchise_period_source"`

	GrossCents   int64 `json:"gross_cents" gorm:"not null"`
	ExpenseCents int64 `json:"expense_cents" gorm:"not null"`

	Metadata datatypes.JSONMap `json:"metadata" gorm:"type:jsonb"`

	RecordedAt time.Time `json:"recorded_at" gorm:"not null"`
}

func (RevenueEntry) TableName() string { return "revenue_entries" }

// PeriodAggregate is a franchise period's summed revenue, the input shape
// for a distribution run.
type PeriodAggregate struct {
	FranchiseID  snowflake.ID `json:"franchise_id"`
	Period       string       `json:"period"`
	GrossCents   int64        `json:"gross_cents"`
	ExpenseCents int64        `json:"expense_cents"`
}
