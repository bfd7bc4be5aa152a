package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	"github.com/franchizelabs/franchize/internal/brand/repository"
	"github.com/franchizelabs/franchize/internal/clock"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  branddomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
}

func NewService(p ServiceParam) branddomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("brand.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.NewRepository(),
	}
}

func (s *Service) CreateBrand(ctx context.Context, req branddomain.CreateBrandRequest) (*branddomain.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", branddomain.ErrInvalidTemplate)
	}
	if req.RoyaltyRateBps < 0 || req.PlatformRateBps < 0 {
		return nil, fmt.Errorf("%w: fee rates must not be negative", branddomain.ErrInvalidTemplate)
	}

	now := s.clock.Now(ctx)
	b := branddomain.Brand{
		ID:              s.genID.Generate(),
		Name:            name,
		Slug:            slug.Make(name),
		RoyaltyRateBps:  req.RoyaltyRateBps,
		PlatformRateBps: req.PlatformRateBps,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	existing, err := s.repo.GetBrandBySlug(ctx, s.db, b.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, branddomain.ErrSlugTaken
	}

	if err := s.repo.InsertBrand(ctx, s.db, b); err != nil {
		return nil, err
	}

	s.log.Info("brand created", zap.String("brand_id", b.ID.String()), zap.String("slug", b.Slug))
	return &b, nil
}

func (s *Service) GetBrand(ctx context.Context, id snowflake.ID) (*branddomain.Brand, error) {
	b, err := s.repo.GetBrand(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, branddomain.ErrBrandNotFound
	}
	return b, nil
}

func (s *Service) ListBrands(ctx context.Context) ([]branddomain.Brand, error) {
	return s.repo.ListBrands(ctx, s.db)
}

func (s *Service) CreateTemplate(ctx context.Context, req branddomain.CreateTemplateRequest) (*branddomain.CostTemplate, error) {
	if req.MinAreaSqm <= 0 {
		return nil, fmt.Errorf("%w: min_area_sqm must be positive", branddomain.ErrInvalidTemplate)
	}
	if req.FranchiseFeeCents < 0 || req.SetupCostCents < 0 || req.WorkingCapitalCents < 0 {
		return nil, fmt.Errorf("%w: cost components must not be negative", branddomain.ErrInvalidTemplate)
	}

	b, err := s.repo.GetBrand(ctx, s.db, req.BrandID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, branddomain.ErrBrandNotFound
	}

	now := s.clock.Now(ctx)
	effective := now
	if req.EffectiveFrom != nil {
		effective = req.EffectiveFrom.UTC()
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "USD"
	}

	t := branddomain.CostTemplate{
		ID:                  s.genID.Generate(),
		BrandID:             req.BrandID,
		MinAreaSqm:          req.MinAreaSqm,
		FranchiseFeeCents:   req.FranchiseFeeCents,
		SetupCostCents:      req.SetupCostCents,
		WorkingCapitalCents: req.WorkingCapitalCents,
		Currency:            currency,
		EffectiveFrom:       effective,
		CreatedAt:           now,
	}

	if err := s.repo.InsertTemplate(ctx, s.db, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) CurrentTemplate(ctx context.Context, brandID snowflake.ID) (*branddomain.CostTemplate, error) {
	t, err := s.repo.EffectiveTemplate(ctx, s.db, brandID, s.clock.Now(ctx))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, branddomain.ErrTemplateNotFound
	}
	return t, nil
}

func (s *Service) ListTemplates(ctx context.Context, brandID snowflake.ID) ([]branddomain.CostTemplate, error) {
	return s.repo.ListTemplates(ctx, s.db, brandID)
}
