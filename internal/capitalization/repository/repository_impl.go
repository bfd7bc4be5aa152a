package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
)

type repository struct{}

func NewRepository() capdomain.Repository {
	return &repository{}
}

func (r *repository) GetByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (*capdomain.Capitalization, error) {
	var c capdomain.Capitalization
	err := tx.WithContext(ctx).Where("franchise_id = ?", franchiseID).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, c capdomain.Capitalization) error {
	return tx.WithContext(ctx).Create(&c).Error
}

func (r *repository) Update(ctx context.Context, tx *gorm.DB, c capdomain.Capitalization) error {
	return tx.WithContext(ctx).Save(&c).Error
}
