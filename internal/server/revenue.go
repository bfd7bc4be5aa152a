package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
)

func (s *Server) IngestRevenue(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req revenuedomain.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.FranchiseID = franchiseID

	entry, err := s.revenueSvc.Ingest(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, entry)
}

func (s *Server) ListRevenue(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	entries, err := s.revenueSvc.EntriesOf(c.Request.Context(), franchiseID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, entries)
}

func (s *Server) GetPeriodSummary(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	period := strings.TrimSpace(c.Param("period"))
	if period == "" {
		AbortWithError(c, newValidationError("period", "invalid_period", "period is required"))
		return
	}

	summary, err := s.revenueSvc.PeriodSummary(c.Request.Context(), franchiseID, period)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, summary)
}
