package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Get(ctx context.Context, tx *gorm.DB, id snowflake.ID) (*Franchise, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*Franchise, error)
	List(ctx context.Context, tx *gorm.DB) ([]Franchise, error)
	ListByStage(ctx context.Context, tx *gorm.DB, stage Stage) ([]Franchise, error)
	Insert(ctx context.Context, tx *gorm.DB, f Franchise) error
	Update(ctx context.Context, tx *gorm.DB, f Franchise) error
}
