package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

type repository struct{}

func NewRepository() ledgerdomain.Repository {
	return &repository{}
}

func (r *repository) TotalIssued(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (int64, error) {
	var issued int64
	err := tx.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(shares_purchased), 0)
		 FROM shares
		 WHERE franchise_id = ?`,
		franchiseID,
	).Scan(&issued).Error
	return issued, err
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, s ledgerdomain.Share) error {
	return tx.WithContext(ctx).Create(&s).Error
}

func (r *repository) ListByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]ledgerdomain.Share, error) {
	var rows []ledgerdomain.Share
	err := tx.WithContext(ctx).
		Where("franchise_id = ?", franchiseID).
		Order("purchased_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HoldingOf(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, investorID string) (ledgerdomain.InvestorHolding, error) {
	holding := ledgerdomain.InvestorHolding{
		FranchiseID: franchiseID,
		InvestorID:  investorID,
	}
	err := tx.WithContext(ctx).Raw(
		`SELECT COALESCE(SUM(shares_purchased), 0)   AS total_shares,
		        COALESCE(SUM(total_amount_cents), 0) AS total_invested_cents
		 FROM shares
		 WHERE franchise_id = ? AND investor_id = ?`,
		franchiseID,
		investorID,
	).Row().Scan(&holding.TotalShares, &holding.TotalInvestedCents)
	return holding, err
}

func (r *repository) HoldingsSnapshot(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]ledgerdomain.InvestorHolding, error) {
	var holdings []ledgerdomain.InvestorHolding
	err := tx.WithContext(ctx).Raw(
		`SELECT franchise_id,
		        investor_id,
		        SUM(shares_purchased)   AS total_shares,
		        SUM(total_amount_cents) AS total_invested_cents
		 FROM shares
		 WHERE franchise_id = ?
		 GROUP BY franchise_id, investor_id
		 ORDER BY SUM(shares_purchased) DESC, investor_id ASC`,
		franchiseID,
	).Scan(&holdings).Error
	return holdings, err
}
