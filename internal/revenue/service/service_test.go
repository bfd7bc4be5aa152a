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
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	"github.com/franchizelabs/franchize/internal/migration"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
)

func setupRevenueTest(t *testing.T) (*gorm.DB, revenuedomain.Service, franchisedomain.Franchise) {
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
		Stage:         franchisedomain.StageOngoing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, db.Create(&f).Error)

	svc := NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.Fixed{At: now},
	})
	return db, svc, f
}

func TestIngestAndAggregate(t *testing.T) {
	_, svc, f := setupRevenueTest(t)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, revenuedomain.IngestRequest{
		FranchiseID:  f.ID,
		Period:       "2026-02",
		Source:       "pos",
		GrossCents:   700_000,
		ExpenseCents: 100_000,
	})
	require.NoError(t, err)

	_, err = svc.Ingest(ctx, revenuedomain.IngestRequest{
		FranchiseID:  f.ID,
		Period:       "2026-02",
		Source:       "delivery",
		GrossCents:   500_000,
		ExpenseCents: 100_000,
	})
	require.NoError(t, err)

	agg, err := svc.PeriodSummary(ctx, f.ID, "2026-02")
	require.NoError(t, err)
	assert.Equal(t, int64(1_200_000), agg.GrossCents)
	assert.Equal(t, int64(200_000), agg.ExpenseCents)
}

func TestIngestResendDoesNotDoubleCount(t *testing.T) {
	_, svc, f := setupRevenueTest(t)
	ctx := context.Background()

	req := revenuedomain.IngestRequest{
		FranchiseID:  f.ID,
		Period:       "2026-02",
		Source:       "pos",
		GrossCents:   700_000,
		ExpenseCents: 100_000,
	}

	_, err := svc.Ingest(ctx, req)
	require.NoError(t, err)
	_, err = svc.Ingest(ctx, req)
	require.NoError(t, err)

	entries, err := svc.EntriesOf(ctx, f.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	agg, err := svc.PeriodSummary(ctx, f.ID, "2026-02")
	require.NoError(t, err)
	assert.Equal(t, int64(700_000), agg.GrossCents)
}

func TestIngestValidation(t *testing.T) {
	_, svc, f := setupRevenueTest(t)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, revenuedomain.IngestRequest{
		FranchiseID: f.ID,
		Period:      "",
		GrossCents:  100,
	})
	require.ErrorIs(t, err, revenuedomain.ErrInvalidEntry)

	_, err = svc.Ingest(ctx, revenuedomain.IngestRequest{
		FranchiseID: f.ID,
		Period:      "2026-02",
		GrossCents:  -1,
	})
	require.ErrorIs(t, err, revenuedomain.ErrInvalidEntry)
}

func TestIngestUnknownFranchise(t *testing.T) {
	_, svc, _ := setupRevenueTest(t)

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	_, err = svc.Ingest(context.Background(), revenuedomain.IngestRequest{
		FranchiseID: node.Generate(),
		Period:      "2026-02",
		GrossCents:  100,
	})
	require.ErrorIs(t, err, franchisedomain.ErrFranchiseNotFound)
}

func TestIngestDefaultsSource(t *testing.T) {
	_, svc, f := setupRevenueTest(t)

	entry, err := svc.Ingest(context.Background(), revenuedomain.IngestRequest{
		FranchiseID: f.ID,
		Period:      "2026-02",
		GrossCents:  100,
	})
	require.NoError(t, err)
	assert.Equal(t, "pos", entry.Source)
}
