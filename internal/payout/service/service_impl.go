package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	brandrepo "github.com/franchizelabs/franchize/internal/brand/repository"
	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/config"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	franchiserepo "github.com/franchizelabs/franchize/internal/franchise/repository"
	"github.com/franchizelabs/franchize/internal/observability"
	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
	"github.com/franchizelabs/franchize/internal/payout/repository"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	reserverepo "github.com/franchizelabs/franchize/internal/reserve/repository"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
	ledgerrepo "github.com/franchizelabs/franchize/internal/shareledger/repository"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	clock   clock.Clock
	tx      *txlock.Runner
	policy  payoutdomain.Policy
	metrics *observability.Metrics

	repo          payoutdomain.Repository
	reserveRepo   reservedomain.Repository
	ledgerRepo    ledgerdomain.Repository
	franchiseRepo franchisedomain.Repository
	brandRepo     branddomain.Repository

	reserveSvc reservedomain.Service
	gate       franchisedomain.StageGate
}

type ServiceParam struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Runner  *txlock.Runner
	Config  *config.Config
	Metrics *observability.Metrics `optional:"true"`

	ReserveSvc reservedomain.Service
	Gate       franchisedomain.StageGate
}

func NewService(p ServiceParam) payoutdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("payout.service"),

		genID:   p.GenID,
		clock:   p.Clock,
		tx:      p.Runner,
		policy:  payoutdomain.PolicyFromConfig(p.Config),
		metrics: p.Metrics,

		repo:          repository.NewRepository(),
		reserveRepo:   reserverepo.NewRepository(),
		ledgerRepo:    ledgerrepo.NewRepository(),
		franchiseRepo: franchiserepo.NewRepository(),
		brandRepo:     brandrepo.NewRepository(),

		reserveSvc: p.ReserveSvc,
		gate:       p.Gate,
	}
}

// Distribute converts one period's revenue into the royalty/platform/
// investor/reserve split. The funding-ratio read, the tier decision and the
// reserve credit all happen on one per-franchise transaction; a concurrent
// debit can never produce an inconsistent tier decision.
func (s *Service) Distribute(ctx context.Context, req payoutdomain.DistributeRequest) (*payoutdomain.PayoutRecord, error) {
	period := strings.TrimSpace(req.Period)
	if period == "" {
		return nil, errors.New("period key is required")
	}
	if req.GrossRevenueCents < 0 || req.TotalExpenseCents < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", payoutdomain.ErrNonPositiveNetRevenue)
	}

	var record *payoutdomain.PayoutRecord

	err := s.tx.WithKey(ctx, int64(req.FranchiseID), func(tx *gorm.DB) error {
		if err := s.gate.MustBeInStage(ctx, tx, req.FranchiseID, franchisedomain.StageOngoing); err != nil {
			if errors.Is(err, franchisedomain.ErrStageMismatch) || errors.Is(err, franchisedomain.ErrFranchiseNotFound) {
				return fmt.Errorf("%w: %v", payoutdomain.ErrNotOperational, err)
			}
			return err
		}

		exists, err := s.repo.PeriodExists(ctx, tx, req.FranchiseID, period)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", payoutdomain.ErrDuplicatePeriod, period)
		}

		net := req.GrossRevenueCents - req.TotalExpenseCents
		if net <= 0 {
			return fmt.Errorf("%w: gross %d, expenses %d",
				payoutdomain.ErrNonPositiveNetRevenue, req.GrossRevenueCents, req.TotalExpenseCents)
		}

		royaltyBps, platformBps, err := s.resolveFeeRates(ctx, tx, req.FranchiseID)
		if err != nil {
			return err
		}

		royalty := applyBps(net, royaltyBps)
		platform := applyBps(net, platformBps)
		afterFees := net - royalty - platform

		acct, err := s.reserveRepo.GetByFranchise(ctx, tx, req.FranchiseID)
		if err != nil {
			return err
		}
		if acct == nil {
			return reservedomain.ErrAccountNotFound
		}

		holdings, err := s.ledgerRepo.HoldingsSnapshot(ctx, tx, req.FranchiseID)
		if err != nil {
			return err
		}
		var sharesIssued int64
		for _, h := range holdings {
			sharesIssued += h.TotalShares
		}

		// Tier selection uses the ratio before this run's credit.
		ratio := acct.FundingRatio()
		tier := s.policy.TierFor(ratio)

		toInvestors := applyBps(afterFees, tier.InvestorShareBps)
		if sharesIssued == 0 {
			// No holders to pay; the investor portion stays in the reserve.
			toInvestors = 0
		}
		toReserve := afterFees - toInvestors

		now := s.clock.Now(ctx)
		if _, err := s.reserveSvc.CreditIn(ctx, tx, req.FranchiseID, toReserve, now); err != nil {
			return err
		}

		rec := payoutdomain.PayoutRecord{
			ID:                s.genID.Generate(),
			FranchiseID:       req.FranchiseID,
			Period:            period,
			GrossRevenueCents: req.GrossRevenueCents,
			TotalExpenseCents: req.TotalExpenseCents,
			NetRevenueCents:   net,
			RoyaltyCents:      royalty,
			PlatformFeeCents:  platform,
			AfterFeesCents:    afterFees,
			ToInvestorsCents:  toInvestors,
			ToReserveCents:    toReserve,
			DistributionRule:  tier.Rule,
			ReserveRatioAtRun: ratio,
			SharesIssuedAtRun: sharesIssued,
			CreatedAt:         now,
		}
		if err := s.repo.InsertRecord(ctx, tx, rec); err != nil {
			return err
		}

		lines := splitProRata(toInvestors, holdings)
		payouts := make([]payoutdomain.InvestorPayout, 0, len(lines))
		for _, line := range lines {
			payouts = append(payouts, payoutdomain.InvestorPayout{
				ID:             s.genID.Generate(),
				PayoutRecordID: rec.ID,
				FranchiseID:    req.FranchiseID,
				InvestorID:     line.InvestorID,
				SharesHeld:     line.SharesHeld,
				AmountCents:    line.AmountCents,
				CreatedAt:      now,
			})
		}
		if err := s.repo.InsertInvestorPayouts(ctx, tx, payouts); err != nil {
			return err
		}

		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DistributionRuns.WithLabelValues(string(record.DistributionRule)).Inc()
	}
	s.log.Info("distribution run complete",
		zap.String("franchise_id", req.FranchiseID.String()),
		zap.String("period", period),
		zap.String("rule", string(record.DistributionRule)),
		zap.Float64("reserve_ratio", record.ReserveRatioAtRun),
		zap.Int64("to_investors_cents", record.ToInvestorsCents),
		zap.Int64("to_reserve_cents", record.ToReserveCents),
	)
	return record, nil
}

// resolveFeeRates prefers the brand's configured rates, falling back to the
// platform defaults.
func (s *Service) resolveFeeRates(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID) (royaltyBps, platformBps int64, err error) {
	royaltyBps = s.policy.RoyaltyRateBps
	platformBps = s.policy.PlatformRateBps

	f, err := s.franchiseRepo.Get(ctx, tx, franchiseID)
	if err != nil || f == nil {
		return royaltyBps, platformBps, err
	}
	b, err := s.brandRepo.GetBrand(ctx, tx, f.BrandID)
	if err != nil || b == nil {
		return royaltyBps, platformBps, err
	}

	if b.RoyaltyRateBps > 0 {
		royaltyBps = b.RoyaltyRateBps
	}
	if b.PlatformRateBps > 0 {
		platformBps = b.PlatformRateBps
	}
	return royaltyBps, platformBps, nil
}

func (s *Service) PayoutHistory(ctx context.Context, franchiseID snowflake.ID) ([]payoutdomain.PayoutRecord, error) {
	return s.repo.ListRecords(ctx, s.db, franchiseID)
}

func (s *Service) PayoutBreakdown(ctx context.Context, recordID snowflake.ID) (*payoutdomain.PayoutRecord, []payoutdomain.InvestorPayout, error) {
	rec, err := s.repo.GetRecord(ctx, s.db, recordID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, payoutdomain.ErrRecordNotFound
	}
	lines, err := s.repo.ListInvestorPayouts(ctx, s.db, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return rec, lines, nil
}
