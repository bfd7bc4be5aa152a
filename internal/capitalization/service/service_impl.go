package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	brandrepo "github.com/franchizelabs/franchize/internal/brand/repository"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	"github.com/franchizelabs/franchize/internal/capitalization/repository"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
	ledgerrepo "github.com/franchizelabs/franchize/internal/shareledger/repository"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID      *snowflake.Node
	repo       capdomain.Repository
	brandRepo  branddomain.Repository
	ledgerRepo ledgerdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
}

func NewService(p ServiceParam) capdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("capitalization.service"),

		genID:      p.GenID,
		repo:       repository.NewRepository(),
		brandRepo:  brandrepo.NewRepository(),
		ledgerRepo: ledgerrepo.NewRepository(),
	}
}

func (s *Service) CapitalizationOf(ctx context.Context, franchiseID snowflake.ID) (*capdomain.Capitalization, error) {
	c, err := s.repo.GetByFranchise(ctx, s.db, franchiseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, capdomain.ErrNotFound
	}
	return c, nil
}

func (s *Service) EstablishIn(
	ctx context.Context,
	tx *gorm.DB,
	franchiseID snowflake.ID,
	template branddomain.CostTemplate,
	leasedAreaSqm float64,
	now time.Time,
) (*capdomain.Capitalization, error) {
	c, err := capdomain.Compute(template, leasedAreaSqm)
	if err != nil {
		return nil, err
	}

	c.ID = s.genID.Generate()
	c.FranchiseID = franchiseID
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Insert(ctx, tx, c); err != nil {
		return nil, err
	}

	s.log.Info("capitalization established",
		zap.String("franchise_id", franchiseID.String()),
		zap.Int64("total_investment_cents", c.TotalInvestmentCents),
		zap.Int64("total_shares", c.TotalShares),
	)
	return &c, nil
}

func (s *Service) RecomputeIn(
	ctx context.Context,
	tx *gorm.DB,
	franchiseID snowflake.ID,
	leasedAreaSqm float64,
	now time.Time,
) (*capdomain.Capitalization, error) {
	existing, err := s.repo.GetByFranchise(ctx, tx, franchiseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, capdomain.ErrNotFound
	}

	issued, err := s.ledgerRepo.TotalIssued(ctx, tx, franchiseID)
	if err != nil {
		return nil, err
	}
	if issued > 0 {
		return nil, fmt.Errorf("%w: %d shares already issued", capdomain.ErrFrozen, issued)
	}

	template, err := s.brandRepo.GetTemplate(ctx, tx, existing.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, branddomain.ErrTemplateNotFound
	}

	revised, err := capdomain.Compute(*template, leasedAreaSqm)
	if err != nil {
		return nil, err
	}

	revised.ID = existing.ID
	revised.FranchiseID = existing.FranchiseID
	revised.CreatedAt = existing.CreatedAt
	revised.UpdatedAt = now

	if err := s.repo.Update(ctx, tx, revised); err != nil {
		return nil, err
	}

	s.log.Info("capitalization recomputed",
		zap.String("franchise_id", franchiseID.String()),
		zap.Float64("leased_area_sqm", leasedAreaSqm),
		zap.Int64("total_shares", revised.TotalShares),
	)
	return &revised, nil
}
