package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Service interface {
	// OpenIn creates the reserve with a zero balance when the franchise
	// enters the ongoing stage; runs in the caller's transaction.
	OpenIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, targetCents int64, now time.Time) (*ReserveAccount, error)

	// CreditIn and DebitIn mutate the balance inside the caller's
	// per-franchise transaction, keeping the funding-ratio read and the
	// subsequent write on one snapshot.
	CreditIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, amountCents int64, now time.Time) (*ReserveAccount, error)
	DebitIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, amountCents int64, now time.Time) (*ReserveAccount, error)

	// Debit is the standalone entry point for operating withdrawals.
	Debit(ctx context.Context, franchiseID snowflake.ID, amountCents int64) (*ReserveAccount, error)

	Status(ctx context.Context, franchiseID snowflake.ID) (*ReserveAccount, error)
}
