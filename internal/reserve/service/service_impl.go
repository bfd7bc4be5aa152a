package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/franchizelabs/franchize/internal/clock"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	"github.com/franchizelabs/franchize/internal/reserve/repository"
	"github.com/franchizelabs/franchize/pkg/db/txlock"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID *snowflake.Node
	clock clock.Clock
	repo  reservedomain.Repository
	tx    *txlock.Runner
}

type ServiceParam struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Clock  clock.Clock
	Runner *txlock.Runner
}

func NewService(p ServiceParam) reservedomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("reserve.service"),

		genID: p.GenID,
		clock: p.Clock,
		repo:  repository.NewRepository(),
		tx:    p.Runner,
	}
}

func (s *Service) OpenIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, targetCents int64, now time.Time) (*reservedomain.ReserveAccount, error) {
	existing, err := s.repo.GetByFranchise(ctx, tx, franchiseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	a := reservedomain.ReserveAccount{
		ID:           s.genID.Generate(),
		FranchiseID:  franchiseID,
		BalanceCents: 0,
		TargetCents:  targetCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, tx, a); err != nil {
		return nil, err
	}

	s.log.Info("reserve opened",
		zap.String("franchise_id", franchiseID.String()),
		zap.Int64("target_cents", targetCents),
	)
	return &a, nil
}

func (s *Service) CreditIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, amountCents int64, now time.Time) (*reservedomain.ReserveAccount, error) {
	if amountCents < 0 {
		return nil, reservedomain.ErrInvalidAmount
	}

	a, err := s.repo.GetByFranchise(ctx, tx, franchiseID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, reservedomain.ErrAccountNotFound
	}

	a.BalanceCents += amountCents
	a.UpdatedAt = now
	if err := s.repo.Update(ctx, tx, *a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DebitIn(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, amountCents int64, now time.Time) (*reservedomain.ReserveAccount, error) {
	if amountCents < 0 {
		return nil, reservedomain.ErrInvalidAmount
	}

	a, err := s.repo.GetByFranchise(ctx, tx, franchiseID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, reservedomain.ErrAccountNotFound
	}

	if amountCents > a.BalanceCents {
		return nil, fmt.Errorf("%w: balance %d, requested %d",
			reservedomain.ErrInsufficientReserve, a.BalanceCents, amountCents)
	}

	a.BalanceCents -= amountCents
	a.UpdatedAt = now
	if err := s.repo.Update(ctx, tx, *a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Debit(ctx context.Context, franchiseID snowflake.ID, amountCents int64) (*reservedomain.ReserveAccount, error) {
	var out *reservedomain.ReserveAccount
	err := s.tx.WithKey(ctx, int64(franchiseID), func(tx *gorm.DB) error {
		a, err := s.DebitIn(ctx, tx, franchiseID, amountCents, s.clock.Now(ctx))
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Status(ctx context.Context, franchiseID snowflake.ID) (*reservedomain.ReserveAccount, error) {
	a, err := s.repo.GetByFranchise(ctx, s.db, franchiseID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, reservedomain.ErrAccountNotFound
	}
	return a, nil
}
