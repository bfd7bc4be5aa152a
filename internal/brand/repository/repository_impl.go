package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
)

type repository struct{}

func NewRepository() branddomain.Repository {
	return &repository{}
}

func (r *repository) GetBrand(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*branddomain.Brand, error) {
	var b branddomain.Brand
	err := tx.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetBrandBySlug(ctx context.Context, tx *gorm.DB, slug string) (*branddomain.Brand, error) {
	var b branddomain.Brand
	err := tx.WithContext(ctx).Where("slug = ?", slug).First(&b).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListBrands(ctx context.Context, tx *gorm.DB) ([]branddomain.Brand, error) {
	var brands []branddomain.Brand
	err := tx.WithContext(ctx).Order("created_at ASC").Find(&brands).Error
	return brands, err
}

func (r *repository) InsertBrand(ctx context.Context, tx *gorm.DB, b branddomain.Brand) error {
	return tx.WithContext(ctx).Create(&b).Error
}

func (r *repository) EffectiveTemplate(ctx context.Context, tx *gorm.DB, brandID snowflake.ID, at time.Time) (*branddomain.CostTemplate, error) {
	var t branddomain.CostTemplate
	err := tx.WithContext(ctx).
		Where("brand_id = ? AND effective_from <= ?", brandID, at).
		Order("effective_from DESC").
		First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetTemplate(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*branddomain.CostTemplate, error) {
	var t branddomain.CostTemplate
	err := tx.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) InsertTemplate(ctx context.Context, tx *gorm.DB, t branddomain.CostTemplate) error {
	return tx.WithContext(ctx).Create(&t).Error
}

func (r *repository) ListTemplates(ctx context.Context, tx *gorm.DB, brandID snowflake.ID) ([]branddomain.CostTemplate, error) {
	var rows []branddomain.CostTemplate
	err := tx.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("effective_from DESC").
		Find(&rows).Error
	return rows, err
}
