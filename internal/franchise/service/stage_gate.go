package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	"github.com/franchizelabs/franchize/internal/franchise/repository"
)

type stageGate struct {
	repo franchisedomain.Repository
}

func NewStageGate() franchisedomain.StageGate {
	return &stageGate{repo: repository.NewRepository()}
}

func (g *stageGate) MustBeInStage(ctx context.Context, tx *gorm.DB, franchiseID snowflake.ID, stages ...franchisedomain.Stage) error {
	if franchiseID == 0 {
		return errors.New("franchise id is required")
	}

	f, err := g.repo.Get(ctx, tx, franchiseID)
	if err != nil {
		return err
	}
	if f == nil {
		return franchisedomain.ErrFranchiseNotFound
	}

	for _, stage := range stages {
		if f.Stage == stage {
			return nil
		}
	}
	return fmt.Errorf("%w: stage=%s", franchisedomain.ErrStageMismatch, f.Stage)
}
