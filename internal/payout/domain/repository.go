package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	PeriodExists(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, period string) (bool, error)
	InsertRecord(ctx context.Context, tx *gorm.DB, r PayoutRecord) error
	InsertInvestorPayouts(ctx context.Context, tx *gorm.DB, lines []InvestorPayout) error

	GetRecord(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*PayoutRecord, error)
	ListRecords(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) ([]PayoutRecord, error)
	ListInvestorPayouts(ctx context.Context, tx *gorm.DB, recordID snowflake.ID) ([]InvestorPayout, error)
}
