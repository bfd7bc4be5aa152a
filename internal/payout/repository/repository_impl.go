package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
)

type repository struct{}

func NewRepository() payoutdomain.Repository {
	return &repository{}
}

func (r *repository) PeriodExists(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, period string) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&payoutdomain.PayoutRecord{}).
		Where("franchise_id = ? AND period = ?", franchiseID, period).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) InsertRecord(ctx context.Context, tx *gorm.DB, rec payoutdomain.PayoutRecord) error {
	return tx.WithContext(ctx).Create(&rec).Error
}

func (r *repository) InsertInvestorPayouts(ctx context.Context, tx *gorm.DB, lines []payoutdomain.InvestorPayout) error {
	if len(lines) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&lines).Error
}

func (r *repository) GetRecord(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*payoutdomain.PayoutRecord, error) {
	var rec payoutdomain.PayoutRecord
	err := tx.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *repository) ListRecords(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]payoutdomain.PayoutRecord, error) {
	var rows []payoutdomain.PayoutRecord
	err := tx.WithContext(ctx).
		Where("franchise_id = ?", franchiseID).
		Order("period DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListInvestorPayouts(ctx context.Context, tx *gorm.DB, recordID snowflake.ID) ([]payoutdomain.InvestorPayout, error) {
	var rows []payoutdomain.InvestorPayout
	err := tx.WithContext(ctx).
		Where("payout_record_id = ?", recordID).
		Order("amount_cents DESC, investor_id ASC").
		Find(&rows).Error
	return rows, err
}
