package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) (model.Payment, error)
	FindByID(ctx context.Context, id int64) (model.Payment, error)
	ListPending(ctx context.Context) ([]model.Payment, error)
	// Pending claims on orders containing the seller's lines.
	ListPendingBySeller(ctx context.Context, sellerID int64) ([]model.Payment, error)
	// Conditional transition keyed on the expected prior state; false when
	// the claim was not in the expected state.
	UpdateStatusIf(ctx context.Context, id int64, from model.PaymentClaimStatus, to model.PaymentClaimStatus, resolvedBy int64, resolvedAt time.Time) (bool, error)
	CountPending(ctx context.Context) (int64, error)
}
