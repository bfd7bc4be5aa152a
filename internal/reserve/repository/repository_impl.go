package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
)

type repository struct{}

func NewRepository() reservedomain.Repository {
	return &repository{}
}

func (r *repository) GetByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (*reservedomain.ReserveAccount, error) {
	var a reservedomain.ReserveAccount
	err := tx.WithContext(ctx).Where("franchise_id = ?", franchiseID).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, a reservedomain.ReserveAccount) error {
	return tx.WithContext(ctx).Create(&a).Error
}

func (r *repository) Update(ctx context.Context, tx *gorm.DB, a reservedomain.ReserveAccount) error {
	return tx.WithContext(ctx).Save(&a).Error
}
