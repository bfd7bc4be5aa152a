package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type CreateFranchiseRequest struct {
	BrandID       snowflake.ID `json:"brand_id,string" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	LeasedAreaSqm float64      `json:"leased_area_sqm" binding:"required"`
}

type Service interface {
	Create(ctx context.Context, req CreateFranchiseRequest) (*Franchise, error)
	Get(ctx context.Context, id snowflake.ID) (*Franchise, error)
	List(ctx context.Context) ([]Franchise, error)

	// ChangeStage validates the lifecycle transition; entering ongoing
	// opens the working-capital reserve at the capitalization's target.
	ChangeStage(ctx context.Context, id snowflake.ID, next Stage) (*Franchise, error)

	// UpdateLeasedArea recomputes the capitalization. Rejected once any
	// share has been issued.
	UpdateLeasedArea(ctx context.Context, id snowflake.ID, leasedAreaSqm float64) (*Franchise, error)
}

// StageGate checks a franchise's stage inside the caller's transaction, so
// admission decisions and the mutation they guard share one snapshot.
type StageGate interface {
	MustBeInStage(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, stages ...Stage) error
}
