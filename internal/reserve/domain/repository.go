package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	GetByFranchise(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (*ReserveAccount, error)
	Insert(ctx context.Context, tx *gorm.DB, a ReserveAccount) error
	Update(ctx context.Context, tx *gorm.DB, a ReserveAccount) error
}
