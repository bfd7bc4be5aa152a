package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
)

type repository struct{}

func NewRepository() revenuedomain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, e revenuedomain.RevenueEntry) error {
	// Conflicting (franchise, period, source) rows are ignored so re-sent
	// reports cannot double count.
	return tx.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&e).Error
}

func (r *repository) ListByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]revenuedomain.RevenueEntry, error) {
	var rows []revenuedomain.RevenueEntry
	err := tx.WithContext(ctx).
		Where("franchise_id = ?", franchiseID).
		Order("period DESC, source ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) AggregatePeriod(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, period string) (revenuedomain.PeriodAggregate, error) {
	agg := revenuedomain.PeriodAggregate{
		FranchiseID: franchiseID,
		Period:      period,
	}
	err := tx.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(gross_cents), 0)   AS gross_cents,
		        COALESCE(SUM(expense_cents), 0) AS expense_cents
		 FROM revenue_entries
		 WHERE franchise_id = ? AND period = ?`,
		franchiseID,
		period,
	).Row().Scan(&agg.GrossCents, &agg.ExpenseCents)
	return agg, err
}

func (r *repository) ListUndistributed(ctx context.Context, tx *gorm.DB, beforePeriod string) ([]revenuedomain.PeriodAggregate, error) {
	var rows []revenuedomain.PeriodAggregate
	err := tx.WithContext(ctx).Raw(
		`SELECT re.franchise_id,
		        re.period,
		        SUM(re.gross_cents)   AS gross_cents,
		        SUM(re.expense_cents) AS expense_cents
		 FROM revenue_entries re
		 JOIN franchises f ON f.id = re.franchise_id AND f.stage = 'ongoing'
		 WHERE re.period < ?
		 AND NOT EXISTS (
		     SELECT 1 FROM payout_records pr
		     WHERE pr.franchise_id = re.franchise_id AND pr.period = re.period
		 )
		 GROUP BY re.franchise_id, re.period
		 ORDER BY re.period ASC`,
		beforePeriod,
	).Scan(&rows).Error
	return rows, err
}
