// Package domain holds the franchise record and its lifecycle stage. The
// stage gates which engine operations are admissible: purchases during
// funding/launching, distributions only once ongoing.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrFranchiseNotFound = errors.New("franchise not found")
	ErrStageMismatch     = errors.New("franchise stage does not permit this operation")
	ErrInvalidTransition = errors.New("illegal stage transition")
)

type Stage string

const (
	StageFunding   Stage = "funding"
	StageLaunching Stage = "launching"
	StageOngoing   Stage = "ongoing"
	StageClosed    Stage = "closed"
)

// CanTransitionTo encodes the legal lifecycle:
// funding → launching → ongoing → closed, plus an abort from funding.
func (s Stage) CanTransitionTo(next Stage) bool {
	switch s {
	case StageFunding:
		return next == StageLaunching || next == StageClosed
	case StageLaunching:
		return next == StageOngoing || next == StageClosed
	case StageOngoing:
		return next == StageClosed
	default:
		return false
	}
}

func ParseStage(raw string) (Stage, bool) {
	switch Stage(raw) {
	case StageFunding, StageLaunching, StageOngoing, StageClosed:
		return Stage(raw), true
	}
	return "", false
}

type Franchise struct {
	ID      snowflake.ID `json:"id" gorm:"primaryKey"`
	BrandID snowflake.ID `json:"brand_id" gorm:"not null;index"`

	Name          string  `json:"name" gorm:"type:text;not null"`
	Slug          string  `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	LeasedAreaSqm float64 `json:"leased_area_sqm" gorm:"not null"`

	Stage    Stage      `json:"stage" gorm:"type:text;not null;index"`
	OpenedAt *time.Time `json:"opened_at"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Franchise) TableName() string { return "franchises" }
