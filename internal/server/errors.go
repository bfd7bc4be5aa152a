package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	branddomain "github.com/franchizelabs/franchize/internal/brand/domain"
	capdomain "github.com/franchizelabs/franchize/internal/capitalization/domain"
	franchisedomain "github.com/franchizelabs/franchize/internal/franchise/domain"
	payoutdomain "github.com/franchizelabs/franchize/internal/payout/domain"
	reservedomain "github.com/franchizelabs/franchize/internal/reserve/domain"
	revenuedomain "github.com/franchizelabs/franchize/internal/revenue/domain"
	ledgerdomain "github.com/franchizelabs/franchize/internal/shareledger/domain"
)

type apiError struct {
	status  int
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func invalidRequestError() *apiError {
	return &apiError{status: http.StatusBadRequest, Code: "invalid_request", Message: "malformed request body"}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{status: http.StatusBadRequest, Code: code, Field: field, Message: message}
}

type errorMapping struct {
	sentinel error
	status   int
	code     string
}

var errorMappings = []errorMapping{
	{branddomain.ErrBrandNotFound, http.StatusNotFound, "brand_not_found"},
	{branddomain.ErrTemplateNotFound, http.StatusNotFound, "cost_template_not_found"},
	{franchisedomain.ErrFranchiseNotFound, http.StatusNotFound, "franchise_not_found"},
	{capdomain.ErrNotFound, http.StatusNotFound, "capitalization_not_found"},
	{reservedomain.ErrAccountNotFound, http.StatusNotFound, "reserve_account_not_found"},
	{payoutdomain.ErrRecordNotFound, http.StatusNotFound, "payout_record_not_found"},

	{branddomain.ErrInvalidTemplate, http.StatusBadRequest, "invalid_cost_template"},
	{capdomain.ErrBelowMinimumArea, http.StatusBadRequest, "below_minimum_area"},
	{ledgerdomain.ErrInvalidQuantity, http.StatusBadRequest, "invalid_quantity"},
	{ledgerdomain.ErrBelowMinimumStake, http.StatusBadRequest, "below_minimum_stake"},
	{reservedomain.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
	{revenuedomain.ErrInvalidEntry, http.StatusBadRequest, "invalid_revenue_entry"},
	{payoutdomain.ErrNonPositiveNetRevenue, http.StatusBadRequest, "non_positive_net_revenue"},

	{branddomain.ErrSlugTaken, http.StatusConflict, "slug_taken"},
	{franchisedomain.ErrStageMismatch, http.StatusConflict, "stage_mismatch"},
	{franchisedomain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
	{capdomain.ErrFrozen, http.StatusConflict, "capitalization_frozen"},
	{ledgerdomain.ErrInsufficientSupply, http.StatusConflict, "insufficient_supply"},
	{reservedomain.ErrInsufficientReserve, http.StatusConflict, "insufficient_reserve"},
	{payoutdomain.ErrNotOperational, http.StatusConflict, "franchise_not_operational"},
	{payoutdomain.ErrDuplicatePeriod, http.StatusConflict, "period_already_distributed"},
}

// AbortWithError writes the canonical error envelope. Unknown errors
// surface as 500 without leaking internals.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.status, gin.H{"error": apiErr})
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			c.AbortWithStatusJSON(m.status, gin.H{"error": &apiError{
				status:  m.status,
				Code:    m.code,
				Message: err.Error(),
			}})
			return
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": &apiError{
		status:  http.StatusInternalServerError,
		Code:    "internal_error",
		Message: "internal server error",
	}})
}
