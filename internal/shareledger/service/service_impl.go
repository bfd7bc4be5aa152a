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

	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	caprepo "github.com/franchizelabs/franchize/internal/capitalization/repository"
	"github.com/franchizelabs/franchize/internal/clock"
	"github.com/franchizelabs/franchize/internal/config"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	"github.com/franchizelabs/franchize/internal/observability"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
	"github.com/franchizelabs/franchize/internal/shareledger/repository"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID   *snowflake.Node
	clock   clock.Clock
	tx      *txlock.Runner
	policy  ledgerdomain.Policy
	metrics *observability.Metrics

	repo    ledgerdomain.Repository
	capRepo capdomain.Repository
	gate    franchisedomain.StageGate
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
	Gate    franchisedomain.StageGate
}

func NewService(p ServiceParam) ledgerdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("shareledger.service"),

		genID:   p.GenID,
		clock:   p.Clock,
		tx:      p.Runner,
		policy:  ledgerdomain.Policy{MinStakeBps: p.Config.Engine.MinStakeBps},
		metrics: p.Metrics,

		repo:    repository.NewRepository(),
		capRepo: caprepo.NewRepository(),
		gate:    p.Gate,
	}
}

// Purchase admits a share purchase against the franchise's open
// capitalization. Validation happens strictly before the append, inside the
// per-franchise transaction, so two racing purchases can never overshoot
// the share supply.
func (s *Service) Purchase(ctx context.Context, req ledgerdomain.PurchaseRequest) (*ledgerdomain.Share, error) {
	if req.RequestedShares < 1 {
		s.countRejection("invalid_quantity")
		return nil, fmt.Errorf("%w: requested %d", ledgerdomain.ErrInvalidQuantity, req.RequestedShares)
	}
	investorID := strings.TrimSpace(req.InvestorID)
	if investorID == "" {
		s.countRejection("invalid_quantity")
		return nil, fmt.Errorf("%w: investor id is required", ledgerdomain.ErrInvalidQuantity)
	}

	var created *ledgerdomain.Share
	err := s.tx.WithKey(ctx, int64(req.FranchiseID), func(tx *gorm.DB) error {
		if err := s.gate.MustBeInStage(ctx, tx, req.FranchiseID,
			franchisedomain.StageFunding, franchisedomain.StageLaunching); err != nil {
			return err
		}

		cap, err := s.capRepo.GetByFranchise(ctx, tx, req.FranchiseID)
		if err != nil {
			return err
		}
		if cap == nil {
			return capdomain.ErrNotFound
		}

		issued, err := s.repo.TotalIssued(ctx, tx, req.FranchiseID)
		if err != nil {
			return err
		}

		remaining := cap.TotalShares - issued
		if req.RequestedShares > remaining {
			return fmt.Errorf("%w: %d shares remaining", ledgerdomain.ErrInsufficientSupply, remaining)
		}

		if floor := s.policy.MinStakeFloor(cap.TotalShares); req.RequestedShares < floor {
			return fmt.Errorf("%w: minimum %d shares", ledgerdomain.ErrBelowMinimumStake, floor)
		}

		share := ledgerdomain.Share{
			ID:               s.genID.Generate(),
			FranchiseID:      req.FranchiseID,
			InvestorID:       investorID,
			SharesPurchased:  req.RequestedShares,
			SharePriceCents:  cap.SharePriceCents,
			TotalAmountCents: req.RequestedShares * cap.SharePriceCents,
			TransactionRef:   strings.TrimSpace(req.TransactionRef),
			PurchasedAt:      s.clock.Now(ctx),
		}
		if err := s.repo.Insert(ctx, tx, share); err != nil {
			return err
		}
		created = &share
		return nil
	})
	if err != nil {
		s.countPurchaseError(err)
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.PurchasesAdmitted.Inc()
	}
	s.log.Info("purchase admitted",
		zap.String("franchise_id", req.FranchiseID.String()),
		zap.String("investor_id", investorID),
		zap.Int64("shares", created.SharesPurchased),
		zap.Int64("amount_cents", created.TotalAmountCents),
	)
	return created, nil
}

func (s *Service) HoldingsOf(ctx context.Context, franchiseID snowflake.ID, investorID string) (ledgerdomain.InvestorHolding, error) {
	return s.repo.HoldingOf(ctx, s.db, franchiseID, investorID)
}

func (s *Service) TotalSharesIssued(ctx context.Context, franchiseID snowflake.ID) (int64, error) {
	return s.repo.TotalIssued(ctx, s.db, franchiseID)
}

func (s *Service) SharesOf(ctx context.Context, franchiseID snowflake.ID) ([]ledgerdomain.Share, error) {
	return s.repo.ListByFranchise(ctx, s.db, franchiseID)
}

func (s *Service) countRejection(reason string) {
	if s.metrics != nil {
		s.metrics.PurchasesRejected.WithLabelValues(reason).Inc()
	}
}

func (s *Service) countPurchaseError(err error) {
	switch {
	case errors.Is(err, ledgerdomain.ErrInsufficientSupply):
		s.countRejection("insufficient_supply")
	case errors.Is(err, ledgerdomain.ErrBelowMinimumStake):
		s.countRejection("below_minimum_stake")
	case errors.Is(err, franchisedomain.ErrStageMismatch):
		s.countRejection("stage_mismatch")
	}
}
