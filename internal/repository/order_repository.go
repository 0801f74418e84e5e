package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Order, error)
	// Orders containing at least one line owned by the seller.
	ListBySellerID(ctx context.Context, sellerID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// Conditional transition; false when the order was not in any of the
	// expected states (a concurrent writer got there first).
	UpdatePaymentStatusIf(ctx context.Context, orderID int64, from []model.PaymentStatus, to model.PaymentStatus) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	SumTotalByPaymentStatus(ctx context.Context, status model.PaymentStatus) (float64, error)
	// Completed-order count and sales sum restricted to the seller's lines.
	SellerCompletedSales(ctx context.Context, sellerID int64) (int64, float64, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ExistsBySeller(ctx context.Context, orderID int64, sellerID int64) (bool, error)
}

type TrackingRepository interface {
	Append(ctx context.Context, ev model.TrackingEvent) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.TrackingEvent, error)
}
