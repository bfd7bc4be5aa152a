package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
)

type repository struct{}

func NewRepository() franchisedomain.Repository {
	return &repository{}
}

func (r *repository) Get(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*franchisedomain.Franchise, error) {
	var f franchisedomain.Franchise
	err := tx.WithContext(ctx).Where("id = ?", id).First(&f).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*franchisedomain.Franchise, error) {
	var f franchisedomain.Franchise
	err := tx.WithContext(ctx).Where("slug = ?", slug).First(&f).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *repository) List(ctx context.Context, tx *gorm.DB) ([]franchisedomain.Franchise, error) {
	var rows []franchisedomain.Franchise
	err := tx.WithContext(ctx).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) ListByStage(ctx context.Context, tx *gorm.DB, stage franchisedomain.Stage) ([]franchisedomain.Franchise, error) {
	var rows []franchisedomain.Franchise
	err := tx.WithContext(ctx).Where("stage = ?", stage).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Insert(ctx context.Context, tx *gorm.DB, f franchisedomain.Franchise) error {
	return tx.WithContext(ctx).Create(&f).Error
}

func (r *repository) Update(ctx context.Context, tx *gorm.DB, f franchisedomain.Franchise) error {
	return tx.WithContext(ctx).Save(&f).Error
}
