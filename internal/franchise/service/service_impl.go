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
	brandrepo "github.com/franchizelabs/franchize/internal/brand/repository"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	"github.com/franchizelabs/franchize/internal/clock"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	"github.com/franchizelabs/franchize/internal/franchise/repository"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	tx    *txlock.Runner

	repo      franchisedomain.Repository
	brandRepo branddomain.Repository

	capSvc     capdomain.Service
	reserveSvc reservedomain.Service
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Runner *txlock.Runner

	CapSvc     capdomain.Service
	ReserveSvc reservedomain.Service
}

func NewService(p ServiceParam) franchisedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("franchise.service"),

		genID: p.GenID,
		clock: p.Clock,
		tx:    p.Runner,

		repo:      repository.NewRepository(),
		brandRepo: brandrepo.NewRepository(),

		capSvc:     p.CapSvc,
		reserveSvc: p.ReserveSvc,
	}
}

func (s *Service) Create(ctx context.Context, req franchisedomain.CreateFranchiseRequest) (*franchisedomain.Franchise, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("franchise name is required")
	}

	now := s.clock.Now(ctx)

	brand, err := s.brandRepo.GetBrand(ctx, s.db, req.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, branddomain.ErrBrandNotFound
	}

	template, err := s.brandRepo.EffectiveTemplate(ctx, s.db, req.BrandID, now)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, branddomain.ErrTemplateNotFound
	}

	f := franchisedomain.Franchise{
		ID:            s.genID.Generate(),
		BrandID:       req.BrandID,
		Name:          name,
		Slug:          slug.Make(name),
		LeasedAreaSqm: req.LeasedAreaSqm,
		Stage:         franchisedomain.StageFunding,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Insert(ctx, tx, f); err != nil {
			return err
		}
		_, err := s.capSvc.EstablishIn(ctx, tx, f.ID, *template, req.LeasedAreaSqm, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("franchise created",
		zap.String("franchise_id", f.ID.String()),
		zap.String("brand_id", req.BrandID.String()),
		zap.Float64("leased_area_sqm", req.LeasedAreaSqm),
	)
	return &f, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*franchisedomain.Franchise, error) {
	f, err := s.repo.Get(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, franchisedomain.ErrFranchiseNotFound
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]franchisedomain.Franchise, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) ChangeStage(ctx context.Context, id snowflake.ID, next franchisedomain.Stage) (*franchisedomain.Franchise, error) {
	var out *franchisedomain.Franchise

	err := s.tx.WithKey(ctx, int64(id), func(tx *gorm.DB) error {
		f, err := s.repo.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return franchisedomain.ErrFranchiseNotFound
		}
		if !f.Stage.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", franchisedomain.ErrInvalidTransition, f.Stage, next)
		}

		now := s.clock.Now(ctx)
		f.Stage = next
		f.UpdatedAt = now

		if next == franchisedomain.StageOngoing {
			f.OpenedAt = &now

			cap, err := s.capSvc.CapitalizationOf(ctx, f.ID)
			if err != nil {
				return err
			}
			if _, err := s.reserveSvc.OpenIn(ctx, tx, f.ID, cap.WorkingCapitalCents, now); err != nil {
				return err
			}
		}

		if err := s.repo.Update(ctx, tx, *f); err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("franchise stage changed",
		zap.String("franchise_id", id.String()),
		zap.String("stage", string(next)),
	)
	return out, nil
}

func (s *Service) UpdateLeasedArea(ctx context.Context, id snowflake.ID, leasedAreaSqm float64) (*franchisedomain.Franchise, error) {
	var out *franchisedomain.Franchise

	err := s.tx.WithKey(ctx, int64(id), func(tx *gorm.DB) error {
		f, err := s.repo.Get(ctx, tx, id)
		if err != nil {
			return err
		}
		if f == nil {
			return franchisedomain.ErrFranchiseNotFound
		}
		if f.Stage != franchisedomain.StageFunding {
			return fmt.Errorf("%w: area edits only permitted during funding", franchisedomain.ErrStageMismatch)
		}

		now := s.clock.Now(ctx)
		if _, err := s.capSvc.RecomputeIn(ctx, tx, id, leasedAreaSqm, now); err != nil {
			return err
		}

		f.LeasedAreaSqm = leasedAreaSqm
		f.UpdatedAt = now
		if err := s.repo.Update(ctx, tx, *f); err != nil {
			return err
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
