package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/migration"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

func setupReserveTest(t *testing.T) (*gorm.DB, reservedomain.Service, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.Models()...))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := NewService(ServiceParam{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  clock.Fixed{At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		Runner: txlock.NewRunner(db),
	})
	return db, svc, node
}

func TestOpenIsIdempotent(t *testing.T) {
	db, svc, node := setupReserveTest(t)
	ctx := context.Background()
	now := time.Now().UTC()
	franchiseID := node.Generate()

	first, err := svc.OpenIn(ctx, db, franchiseID, 1_000_000, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.BalanceCents)
	assert.Equal(t, int64(1_000_000), first.TargetCents)

	second, err := svc.OpenIn(ctx, db, franchiseID, 2_000_000, now)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1_000_000), second.TargetCents)
}

func TestCreditAndDebit(t *testing.T) {
	db, svc, node := setupReserveTest(t)
	ctx := context.Background()
	now := time.Now().UTC()
	franchiseID := node.Generate()

	_, err := svc.OpenIn(ctx, db, franchiseID, 1_000_000, now)
	require.NoError(t, err)

	acct, err := svc.CreditIn(ctx, db, franchiseID, 400_000, now)
	require.NoError(t, err)
	assert.Equal(t, int64(400_000), acct.BalanceCents)
	assert.Equal(t, 0.4, acct.FundingRatio())

	acct, err = svc.Debit(ctx, franchiseID, 150_000)
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), acct.BalanceCents)
}

func TestDebitRejectsOverdraft(t *testing.T) {
	db, svc, node := setupReserveTest(t)
	ctx := context.Background()
	now := time.Now().UTC()
	franchiseID := node.Generate()

	_, err := svc.OpenIn(ctx, db, franchiseID, 1_000_000, now)
	require.NoError(t, err)
	_, err = svc.CreditIn(ctx, db, franchiseID, 100_000, now)
	require.NoError(t, err)

	_, err = svc.Debit(ctx, franchiseID, 100_001)
	require.ErrorIs(t, err, reservedomain.ErrInsufficientReserve)

	acct, err := svc.Status(ctx, franchiseID)
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), acct.BalanceCents)
}

func TestNegativeAmountsRejected(t *testing.T) {
	db, svc, node := setupReserveTest(t)
	ctx := context.Background()
	now := time.Now().UTC()
	franchiseID := node.Generate()

	_, err := svc.OpenIn(ctx, db, franchiseID, 1_000_000, now)
	require.NoError(t, err)

	_, err = svc.CreditIn(ctx, db, franchiseID, -1, now)
	require.ErrorIs(t, err, reservedomain.ErrInvalidAmount)

	_, err = svc.Debit(ctx, franchiseID, -1)
	require.ErrorIs(t, err, reservedomain.ErrInvalidAmount)
}

func TestStatusUnknownFranchise(t *testing.T) {
	_, svc, node := setupReserveTest(t)

	_, err := svc.Status(context.Background(), node.Generate())
	require.ErrorIs(t, err, reservedomain.ErrAccountNotFound)
}
