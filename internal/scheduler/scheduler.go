package scheduler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/config"
	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
	revenuerepo "github.com/franchizelabs/franchize/internal/revenue/repository"
)

// periodLayout is the key format for monthly accounting periods.
const periodLayout = "2006-01"

// Scheduler drains closed revenue periods into payout runs. Each cycle
// it collects aggregates for ongoing franchises with no payout record
// for a finished period and runs the distribution for them.
type Scheduler struct {
	db  *gorm.DB
	log *zap.Logger
	cfg *config.Config

	clock clock.Clock

	revenueRepo revenuedomain.Repository
	payoutSvc   payoutdomain.Service
}

type Param struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Config *config.Config
	Clock  clock.Clock
	Payout payoutdomain.Service
}

func New(p Param) *Scheduler {
	return &Scheduler{
		db:  p.DB,
		log: p.Log.Named("scheduler"),
		cfg: p.Config,

		clock: p.Clock,

		revenueRepo: revenuerepo.NewRepository(),
		payoutSvc:   p.Payout,
	}
}

// RunForever ticks until ctx is cancelled. Interval comes from config;
// anything below one second is clamped.
func (s *Scheduler) RunForever(ctx context.Context) {
	interval := time.Duration(s.cfg.Scheduler.IntervalSeconds) * time.Second
	if interval < time.Second {
		interval = time.Second
	}

	s.log.Info("scheduler started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := s.DistributePendingPeriods(ctx); err != nil {
			s.log.Error("distribution sweep failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// DistributePendingPeriods runs payouts for every closed, undistributed
// revenue period. The current month stays open so late entries can still
// land before its run.
func (s *Scheduler) DistributePendingPeriods(ctx context.Context) error {
	currentPeriod := s.clock.Now(ctx).UTC().Format(periodLayout)

	pending, err := s.revenueRepo.ListUndistributed(ctx, s.db, currentPeriod)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	var distributed, skipped int
	for _, agg := range pending {
		_, err := s.payoutSvc.Distribute(ctx, payoutdomain.DistributeRequest{
			FranchiseID:       agg.FranchiseID,
			Period:            agg.Period,
			GrossRevenueCents: agg.GrossCents,
			TotalExpenseCents: agg.ExpenseCents,
		})
		switch {
		case err == nil:
			distributed++
		case errors.Is(err, payoutdomain.ErrDuplicatePeriod):
			// Another worker got there first.
			skipped++
		case errors.Is(err, payoutdomain.ErrNonPositiveNetRevenue):
			s.log.Info("period closed without profit",
				zap.String("franchise_id", agg.FranchiseID.String()),
				zap.String("period", agg.Period),
			)
			skipped++
		case errors.Is(err, payoutdomain.ErrNotOperational):
			skipped++
		default:
			s.log.Error("distribution failed",
				zap.String("franchise_id", agg.FranchiseID.String()),
				zap.String("period", agg.Period),
				zap.Error(err),
			)
		}
	}

	s.log.Info("distribution sweep finished",
		zap.Int("pending", len(pending)),
		zap.Int("distributed", distributed),
		zap.Int("skipped", skipped),
	)
	return nil
}
