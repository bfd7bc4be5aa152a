package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	GetByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (*Capitalization, error)
	Insert(ctx context.Context, tx *gorm.DB, c Capitalization) error
	Update(ctx context.Context, tx *gorm.DB, c Capitalization) error
}
