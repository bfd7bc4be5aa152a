package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
)

func (s *Server) CreateFranchise(c *gin.Context) {
	var req franchisedomain.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	f, err := s.franchiseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, f)
}

func (s *Server) ListFranchises(c *gin.Context) {
	list, err := s.franchiseSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, list)
}

func (s *Server) GetFranchise(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	f, err := s.franchiseSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, f)
}

func (s *Server) ChangeFranchiseStage(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	stage, ok := franchisedomain.ParseStage(strings.TrimSpace(req.Stage))
	if !ok {
		AbortWithError(c, newValidationError("stage", "invalid_stage", "unknown stage"))
		return
	}

	f, err := s.franchiseSvc.ChangeStage(c.Request.Context(), id, stage)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, f)
}

func (s *Server) UpdateLeasedArea(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req struct {
		LeasedAreaSqm float64 `json:"leased_area_sqm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	f, err := s.franchiseSvc.UpdateLeasedArea(c.Request.Context(), id, req.LeasedAreaSqm)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, f)
}

func (s *Server) GetCapitalization(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.capSvc.CapitalizationOf(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}
