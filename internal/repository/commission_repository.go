package repository

import (
	"context"
	"time"

	"app/internal/domain/model"
)

type CommissionRepository interface {
	Create(ctx context.Context, c model.Commission) (model.Commission, error)
	FindByID(ctx context.Context, id int64) (model.Commission, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]model.Commission, error)
	ListAll(ctx context.Context) ([]model.Commission, error)
	// Conditional transition; false when the row was not in any of the
	// expected states.
	UpdateStatusIf(ctx context.Context, id int64, from []model.CommissionStatus, to model.CommissionStatus, resolvedAt *time.Time) (bool, error)
	// Reclassifies rows still strictly pending whose due date has passed.
	// Idempotent; returns the number of rows moved.
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	// True when any commission for the order has been settled.
	HasPaidByOrderID(ctx context.Context, orderID int64) (bool, error)
	SumAmountByStatuses(ctx context.Context, sellerID *int64, statuses []model.CommissionStatus) (float64, error)
	Count(ctx context.Context, sellerID *int64) (int64, error)
}

type CommissionPaymentRepository interface {
	Create(ctx context.Context, p model.CommissionPayment) (model.CommissionPayment, error)
	FindByID(ctx context.Context, id int64) (model.CommissionPayment, error)
	ListPendingReview(ctx context.Context) ([]model.CommissionPayment, error)
	UpdateStatusIf(ctx context.Context, id int64, from model.CommissionPaymentStatus, to model.CommissionPaymentStatus, resolvedBy int64, resolvedAt time.Time) (bool, error)
	CountPendingReview(ctx context.Context) (int64, error)
}
