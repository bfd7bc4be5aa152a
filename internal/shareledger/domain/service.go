package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type PurchaseRequest struct {
	FranchiseID     snowflake.ID `json:"-"`
	InvestorID      string       `json:"investor_id" binding:"required"`
	RequestedShares int64        `json:"requested_shares" binding:"required"`
	// TransactionRef is the payment collaborator's proof of funds movement.
	// The ledger records it verbatim and does not validate authenticity.
	TransactionRef string `json:"transaction_ref" binding:"required"`
}

type Service interface {
	Purchase(ctx context.Context, req PurchaseRequest) (*Share, error)
	HoldingsOf(ctx context.Context, franchiseID snowflake.ID, investorID string) (InvestorHolding, error)
	TotalSharesIssued(ctx context.Context, franchiseID snowflake.ID) (int64, error)
	SharesOf(ctx context.Context, franchiseID snowflake.ID) ([]Share, error)
}
