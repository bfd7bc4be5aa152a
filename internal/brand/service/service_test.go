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

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/migration"
)

func setupBrandTest(t *testing.T) branddomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.Models()...))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.Fixed{At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	})
}

func TestCreateBrandSlugsName(t *testing.T) {
	svc := setupBrandTest(t)

	b, err := svc.CreateBrand(context.Background(), branddomain.CreateBrandRequest{
		Name: "Kopi Nusantara",
	})
	require.NoError(t, err)
	assert.Equal(t, "kopi-nusantara", b.Slug)
}

func TestCreateBrandRejectsDuplicateSlug(t *testing.T) {
	svc := setupBrandTest(t)
	ctx := context.Background()

	_, err := svc.CreateBrand(ctx, branddomain.CreateBrandRequest{Name: "Kopi Nusantara"})
	require.NoError(t, err)

	_, err = svc.CreateBrand(ctx, branddomain.CreateBrandRequest{Name: "Kopi  Nusantara"})
	require.ErrorIs(t, err, branddomain.ErrSlugTaken)
}

func TestCreateTemplateValidation(t *testing.T) {
	svc := setupBrandTest(t)
	ctx := context.Background()

	b, err := svc.CreateBrand(ctx, branddomain.CreateBrandRequest{Name: "Kopi Nusantara"})
	require.NoError(t, err)

	_, err = svc.CreateTemplate(ctx, branddomain.CreateTemplateRequest{
		BrandID:    b.ID,
		MinAreaSqm: 0,
	})
	require.ErrorIs(t, err, branddomain.ErrInvalidTemplate)

	_, err = svc.CreateTemplate(ctx, branddomain.CreateTemplateRequest{
		BrandID:           b.ID,
		MinAreaSqm:        50,
		FranchiseFeeCents: -1,
	})
	require.ErrorIs(t, err, branddomain.ErrInvalidTemplate)
}

func TestCurrentTemplatePicksLatestEffective(t *testing.T) {
	svc := setupBrandTest(t)
	ctx := context.Background()

	b, err := svc.CreateBrand(ctx, branddomain.CreateBrandRequest{Name: "Kopi Nusantara"})
	require.NoError(t, err)

	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreateTemplate(ctx, branddomain.CreateTemplateRequest{
		BrandID:           b.ID,
		MinAreaSqm:        50,
		FranchiseFeeCents: 1_000_000,
		EffectiveFrom:     &old,
	})
	require.NoError(t, err)

	recent := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer, err := svc.CreateTemplate(ctx, branddomain.CreateTemplateRequest{
		BrandID:           b.ID,
		MinAreaSqm:        50,
		FranchiseFeeCents: 2_000_000,
		EffectiveFrom:     &recent,
	})
	require.NoError(t, err)

	// A revision dated after the clock must not be selected yet.
	future := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreateTemplate(ctx, branddomain.CreateTemplateRequest{
		BrandID:           b.ID,
		MinAreaSqm:        50,
		FranchiseFeeCents: 3_000_000,
		EffectiveFrom:     &future,
	})
	require.NoError(t, err)

	current, err := svc.CurrentTemplate(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, current.ID)
}

func TestCurrentTemplateMissing(t *testing.T) {
	svc := setupBrandTest(t)
	ctx := context.Background()

	b, err := svc.CreateBrand(ctx, branddomain.CreateBrandRequest{Name: "Kopi Nusantara"})
	require.NoError(t, err)

	_, err = svc.CurrentTemplate(ctx, b.ID)
	require.ErrorIs(t, err, branddomain.ErrTemplateNotFound)
}
