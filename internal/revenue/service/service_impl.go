package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/franchizelabs/franchize/internal/clock"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	franchiserepo "github.com/franchizelabs/franchize/internal/franchise/repository"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
	"github.com/franchizelabs/franchize/internal/revenue/repository"
)

const defaultSource = "pos"

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock

	repo          revenuedomain.Repository
	franchiseRepo franchisedomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) revenuedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("revenue.service"),

		genID: p.GenID,
		clock: p.Clock,

		repo:          repository.NewRepository(),
		franchiseRepo: franchiserepo.NewRepository(),
	}
}

func (s *Service) Ingest(ctx context.Context, req revenuedomain.IngestRequest) (*revenuedomain.RevenueEntry, error) {
	period := strings.TrimSpace(req.Period)
	if period == "" {
		return nil, fmt.Errorf("%w: period is required", revenuedomain.ErrInvalidEntry)
	}
	if req.GrossCents < 0 || req.ExpenseCents < 0 {
		return nil, fmt.Errorf("%w: amounts must not be negative", revenuedomain.ErrInvalidEntry)
	}

	f, err := s.franchiseRepo.Get(ctx, s.db, req.FranchiseID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, franchisedomain.ErrFranchiseNotFound
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = defaultSource
	}

	e := revenuedomain.RevenueEntry{
		ID:           s.genID.Generate(),
		FranchiseID:  req.FranchiseID,
		Period:       period,
		Source:       source,
		GrossCents:   req.GrossCents,
		ExpenseCents: req.ExpenseCents,
		Metadata:     datatypes.JSONMap(req.Metadata),
		RecordedAt:   s.clock.Now(ctx),
	}
	if err := s.repo.Insert(ctx, s.db, e); err != nil {
		return nil, err
	}

	s.log.Info("revenue entry recorded",
		zap.String("franchise_id", req.FranchiseID.String()),
		zap.String("period", period),
		zap.String("source", source),
		zap.Int64("gross_cents", req.GrossCents),
	)
	return &e, nil
}

func (s *Service) EntriesOf(ctx context.Context, franchiseID snowflake.ID) ([]revenuedomain.RevenueEntry, error) {
	return s.repo.ListByFranchise(ctx, s.db, franchiseID)
}

func (s *Service) PeriodSummary(ctx context.Context, franchiseID snowflake.ID, period string) (revenuedomain.PeriodAggregate, error) {
	return s.repo.AggregatePeriod(ctx, s.db, franchiseID, period)
}
