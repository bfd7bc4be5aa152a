package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) GetReserveStatus(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	acct, err := s.reserveSvc.Status(c.Request.Context(), franchiseID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, acct)
}

func (s *Server) DebitReserve(c *gin.Context) {
	franchiseID, err := idParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req struct {
		AmountCents int64 `json:"amount_cents" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	acct, err := s.reserveSvc.Debit(c.Request.Context(), franchiseID, req.AmountCents)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, acct)
}
