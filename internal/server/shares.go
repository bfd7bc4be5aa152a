package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

func (s *Server) PurchaseShares(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req ledgerdomain.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.FranchiseID = franchiseID
	req.InvestorID = strings.TrimSpace(req.InvestorID)
	req.TransactionRef = strings.TrimSpace(req.TransactionRef)

	share, err := s.ledgerSvc.Purchase(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, share)
}

func (s *Server) ListShares(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	shares, err := s.ledgerSvc.SharesOf(c.Request.Context(), franchiseID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, shares)
}

func (s *Server) GetHolding(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	investorID := strings.TrimSpace(c.Param("investor_id"))
	if investorID == "" {
		AbortWithError(c, newValidationError("investor_id", "invalid_investor", "investor id is required"))
		return
	}

	holding, err := s.ledgerSvc.HoldingsOf(c.Request.Context(), franchiseID, investorID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, holding)
}
