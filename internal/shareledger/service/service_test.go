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

	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/config"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	franchiseservice "github.com/franchizelabs/franchize/internal/franchise/service"
	"github.com/franchizelabs/franchize/internal/migration"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

type ledgerFixture struct {
	db        *gorm.DB
	node      *snowflake.Node
	svc       ledgerdomain.Service
	franchise franchisedomain.Franchise
	cap       capdomain.Capitalization
}

func setupLedgerTest(t *testing.T) *ledgerFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(migration.Models()...))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	f := franchisedomain.Franchise{
		ID:            node.Generate(),
		BrandID:       node.Generate(),
		Name:          "Test Outlet",
		Slug:          "test-outlet",
		LeasedAreaSqm: 50,
		Stage:         franchisedomain.StageFunding,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(&f).Error)

	capRow := capdomain.Capitalization{
		ID:                   node.Generate(),
		FranchiseID:          f.ID,
		TemplateID:           node.Generate(),
		LeasedAreaSqm:        50,
		AreaRatio:            1,
		FranchiseFeeCents:    5_000_000,
		SetupCostCents:       15_000_000,
		WorkingCapitalCents:  10_000_000,
		TotalInvestmentCents: 30_000_000,
		TotalShares:          300_000,
		SharePriceCents:      100,
		Currency:             "USD",
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	require.NoError(t, db.Create(&capRow).Error)

	svc := NewService(ServiceParam{
		DB:     db,
		Log:    zap.NewNop(),
		GenID:  node,
		Clock:  clock.Fixed{At: now},
		Runner: txlock.NewRunner(db),
		Config: &config.Config{Engine: config.EngineConfig{MinStakeBps: 500}},
		Gate:   franchiseservice.NewStageGate(),
	})

	return &ledgerFixture{db: db, node: node, svc: svc, franchise: f, cap: capRow}
}

func TestPurchaseRecordsShareAtCapitalizationPrice(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	share, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 20_000,
		TransactionRef:  "txn-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20_000), share.SharesPurchased)
	assert.Equal(t, int64(100), share.SharePriceCents)
	assert.Equal(t, int64(2_000_000), share.TotalAmountCents)

	issued, err := fx.svc.TotalSharesIssued(ctx, fx.franchise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20_000), issued)
}

func TestPurchaseRejectsOversubscription(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	_, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 280_000,
		TransactionRef:  "txn-1",
	})
	require.NoError(t, err)

	// 20,000 remain; asking for more must fail and leave the ledger intact.
	_, err = fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-b",
		RequestedShares: 20_001,
		TransactionRef:  "txn-2",
	})
	require.ErrorIs(t, err, ledgerdomain.ErrInsufficientSupply)

	issued, err := fx.svc.TotalSharesIssued(ctx, fx.franchise.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(280_000), issued)

	// Taking exactly the remainder is fine.
	_, err = fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-b",
		RequestedShares: 20_000,
		TransactionRef:  "txn-3",
	})
	require.NoError(t, err)
}

func TestPurchaseEnforcesMinimumStake(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	// 5% of 300,000 shares is 15,000.
	_, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 14_999,
		TransactionRef:  "txn-1",
	})
	require.ErrorIs(t, err, ledgerdomain.ErrBelowMinimumStake)

	_, err = fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 15_000,
		TransactionRef:  "txn-2",
	})
	require.NoError(t, err)
}

func TestPurchaseRejectsInvalidQuantity(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	_, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 0,
		TransactionRef:  "txn-1",
	})
	require.ErrorIs(t, err, ledgerdomain.ErrInvalidQuantity)
}

func TestPurchaseGatedByStage(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	require.NoError(t, fx.db.Model(&franchisedomain.Franchise{}).
		Where("id = ?", fx.franchise.ID).
		Update("stage", franchisedomain.StageOngoing).Error)

	_, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
		FranchiseID:     fx.franchise.ID,
		InvestorID:      "inv-a",
		RequestedShares: 15_000,
		TransactionRef:  "txn-1",
	})
	require.ErrorIs(t, err, franchisedomain.ErrStageMismatch)
}

func TestHoldingsAggregateAcrossPurchases(t *testing.T) {
	fx := setupLedgerTest(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := fx.svc.Purchase(ctx, ledgerdomain.PurchaseRequest{
			FranchiseID:     fx.franchise.ID,
			InvestorID:      "inv-a",
			RequestedShares: 15_000,
			TransactionRef:  fmt.Sprintf("txn-%d", i),
		})
		require.NoError(t, err)
	}

	holding, err := fx.svc.HoldingsOf(ctx, fx.franchise.ID, "inv-a")
	require.NoError(t, err)
	assert.Equal(t, int64(45_000), holding.TotalShares)
	assert.Equal(t, int64(4_500_000), holding.TotalInvestedCents)
}
