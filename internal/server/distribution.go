package server

import (
	"github.com/gin-gonic/gin"

	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
)

// DistributeRevenue runs the payout waterfall for one accounting period.
// Amounts omitted from the body fall back to the recorded revenue
// aggregate for that period.
func (s *Server) DistributeRevenue(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req payoutdomain.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.FranchiseID = franchiseID

	if req.GrossRevenueCents == 0 && req.TotalExpenseCents == 0 {
		agg, err := s.revenueSvc.PeriodSummary(c.Request.Context(), franchiseID, req.Period)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.GrossRevenueCents = agg.GrossCents
		req.TotalExpenseCents = agg.ExpenseCents
	}

	record, err := s.payoutSvc.Distribute(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, record)
}

func (s *Server) ListDistributions(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	records, err := s.payoutSvc.PayoutHistory(c.Request.Context(), franchiseID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, records)
}

func (s *Server) GetDistributionBreakdown(c *gin.Context) {
	recordID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	record, lines, err := s.payoutSvc.PayoutBreakdown(c.Request.Context(), recordID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"record": record, "investor_payouts": lines})
}
