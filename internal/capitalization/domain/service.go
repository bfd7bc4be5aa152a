package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
)

// Service owns the capitalization lifecycle. EstablishIn and RecomputeIn
// take a transaction handle because they run inside the franchise module's
// per-franchise transaction.
type Service interface {
	CapitalizationOf(ctx context.Context, franchiseID snowflake.ID) (*Capitalization, error)

	EstablishIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, template branddomain.CostTemplate, leasedAreaSqm float64, now time.Time) (*Capitalization, error)

	// RecomputeIn re-runs the cost formula against the template the
	// capitalization was created from. Fails with ErrFrozen once any share
	// has been issued.
	RecomputeIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, leasedAreaSqm float64, now time.Time) (*Capitalization, error)
}
