// Package seed bootstraps a demo brand with one funding franchise so a
// fresh environment has something to invest in.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

const (
	demoBrandName     = "Kopi Nusantara"
	demoFranchiseName = "Kopi Nusantara Senopati"
)

// EnsureDemoData seeds the demo brand, cost template, franchise and a
// starter investment. Safe to run repeatedly; the brand slug anchors
// idempotency.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		brand, created, err := ensureBrandTx(ctx, tx, node)
		if err != nil || !created {
			return err
		}

		tpl, err := insertTemplateTx(ctx, tx, node, brand.ID)
		if err != nil {
			return err
		}

		return insertFranchiseTx(ctx, tx, node, brand.ID, *tpl)
	})
}

func ensureBrandTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*branddomain.Brand, bool, error) {
	brandSlug := slug.Make(demoBrandName)

	var existing branddomain.Brand
	err := tx.WithContext(ctx).Where("slug = ?", brandSlug).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()
	brand := branddomain.Brand{
		ID:              node.Generate(),
		Name:            demoBrandName,
		Slug:            brandSlug,
		RoyaltyRateBps:  0,
		PlatformRateBps: 0,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := tx.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, false, err
	}
	return &brand, true, nil
}

func insertTemplateTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, brandID snowflake.ID) (*branddomain.CostTemplate, error) {
	now := time.Now().UTC()
	tpl := branddomain.CostTemplate{
		ID:                  node.Generate(),
		BrandID:             brandID,
		MinAreaSqm:          50,
		FranchiseFeeCents:   5_000_000,  // 50,000.00
		SetupCostCents:      15_000_000, // 150,000.00
		WorkingCapitalCents: 10_000_000, // 100,000.00
		Currency:            "USD",
		EffectiveFrom:       now,
		CreatedAt:           now,
	}
	if err := tx.WithContext(ctx).Create(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func insertFranchiseTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, brandID snowflake.ID, tpl branddomain.CostTemplate) error {
	now := time.Now().UTC()

	f := franchisedomain.Franchise{
		ID:            node.Generate(),
		BrandID:       brandID,
		Name:          demoFranchiseName,
		Slug:          slug.Make(demoFranchiseName),
		LeasedAreaSqm: 60,
		Stage:         franchisedomain.StageFunding,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := tx.WithContext(ctx).Create(&f).Error; err != nil {
		return err
	}

	capRow, err := capdomain.Compute(tpl, f.LeasedAreaSqm)
	if err != nil {
		return err
	}
	capRow.ID = node.Generate()
	capRow.FranchiseID = f.ID
	capRow.CreatedAt = now
	capRow.UpdatedAt = now
	if err := tx.WithContext(ctx).Create(&capRow).Error; err != nil {
		return err
	}

	// A starter position keeps demo distribution runs from dividing by an
	// empty ledger.
	share := ledgerdomain.Share{
		ID:              node.Generate(),
		FranchiseID:     f.ID,
		InvestorID:      "demo-investor",
		SharesPurchased: capRow.TotalShares / 10,
		SharePriceCents: capRow.SharePriceCents,
		TransactionRef:  uuid.NewString(),
		PurchasedAt:     now,
	}
	share.TotalAmountCents = share.SharesPurchased * share.SharePriceCents
	return tx.WithContext(ctx).Create(&share).Error
}
