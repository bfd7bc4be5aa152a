package migration

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&branddomain.Brand{},
		&branddomain.CostTemplate{},
		&franchisedomain.Franchise{},
		&capdomain.Capitalization{},
		&ledgerdomain.Share{},
		&reservedomain.ReserveAccount{},
		&revenuedomain.RevenueEntry{},
		&payoutdomain.PayoutRecord{},
		&payoutdomain.InvestorPayout{},
	}
}

// RunMigrations reconciles the schema with the registered models. On
// postgres it serializes against concurrent migrators with an advisory
// lock; sqlite deployments are single-writer already.
func RunMigrations(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("migration database handle is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if conn.Dialector.Name() == "postgres" {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		unlock, err := acquireAdvisoryLock(ctx, sqlDB)
		if err != nil {
			return err
		}
		defer func() {
			_ = unlock(context.Background())
		}()
	}

	return conn.WithContext(ctx).AutoMigrate(Models()...)
}
