package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx       repo.TransactionManager
	orders   repo.OrderRepository
	items    repo.OrderItemRepository
	tracking repo.TrackingRepository
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
	tracking repo.TrackingRepository,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items, tracking: tracking}
}

type OrderLineInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type PlaceOrderInput struct {
	Items           []OrderLineInput
	ShippingAddress string
	ShippingCity    string
	ShippingPhone   string
	PaymentMethodID int64
	Notes           string
}

// OrderDetail is the resource returned by every order mutation, so callers
// never need a follow-up read.
type OrderDetail struct {
	model.Order
	Items        []model.OrderItem     `json:"items"`
	TrackingInfo []model.TrackingEvent `json:"tracking_info"`
}

const orderNumberAttempts = 5

// PlaceOrder prices the cart into an immutable snapshot. Stock is only
// pre-checked here; the decrement happens at payment confirmation.
func (u *OrderUsecase) PlaceOrder(ctx context.Context, actor Actor, in PlaceOrderInput) (OrderDetail, error) {
	if actor.ID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if len(in.Items) == 0 {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
		}
	}
	if strings.TrimSpace(in.ShippingAddress) == "" || strings.TrimSpace(in.ShippingCity) == "" || strings.TrimSpace(in.ShippingPhone) == "" {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "shipping address, city and phone are required")
	}
	if in.PaymentMethodID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	}

	var out OrderDetail

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		orderItems := make([]model.OrderItem, 0, len(in.Items))
		sellers := map[int64]bool{}
		var total float64

		for _, line := range in.Items {
			p, err := r.Products().FindByID(ctx, line.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("product %d not found", line.ProductID))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if p.Stock < line.Quantity {
				return NewHTTPError(http.StatusConflict, fmt.Sprintf("insufficient stock for %s", p.Name))
			}

			lineTotal := round2(p.Price * float64(line.Quantity))
			total = round2(total + lineTotal)
			sellers[p.SellerID] = true

			orderItems = append(orderItems, model.OrderItem{
				ProductID:           p.ID,
				SellerID:            p.SellerID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   p.Price,
				Quantity:            line.Quantity,
				LineTotal:           lineTotal,
				CreatedAt:           now,
			})
		}

		// The payment method must be a receiving account registered by one
		// of the sellers actually in this order.
		spm, err := r.SellerPaymentMethods().FindByID(ctx, in.PaymentMethodID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid payment method")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !spm.Enabled || !sellers[spm.SellerID] {
			return NewHTTPError(http.StatusBadRequest, "invalid payment method")
		}
		method, err := r.PaymentMethods().FindByID(ctx, spm.PaymentMethodID)
		if err == repo.ErrNotFound || (err == nil && !method.Enabled) {
			return NewHTTPError(http.StatusBadRequest, "invalid payment method")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order := model.Order{
			BuyerID:           actor.ID,
			TotalAmount:       total,
			ShippingAddress:   in.ShippingAddress,
			ShippingCity:      in.ShippingCity,
			ShippingPhone:     in.ShippingPhone,
			Notes:             in.Notes,
			PaymentMethodID:   spm.ID,
			PaymentMethodName: method.Name,
			PaymentStatus:     model.PaymentStatusPending,
			OrderStatus:       model.OrderStatusPending,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		// Unique order number. A suffix collision is detected by reading
		// before the insert: letting the INSERT hit the unique index would
		// abort the enclosing transaction on postgres, so no retry could
		// ever succeed from inside it.
		var orderID int64
		for attempt := 0; ; attempt++ {
			order.OrderNumber = newOrderNumber(now)
			_, err := r.Orders().FindByOrderNumber(ctx, order.OrderNumber)
			if err == nil {
				if attempt+1 >= orderNumberAttempts {
					return NewHTTPError(http.StatusInternalServerError, "could not allocate order number")
				}
				continue
			}
			if err != repo.ErrNotFound {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			orderID, err = r.Orders().Create(ctx, order)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			break
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		seed := model.TrackingEvent{
			OrderID:   orderID,
			Status:    "Order Placed",
			Note:      "Order has been placed. Awaiting payment.",
			CreatedAt: now,
		}
		if err := r.Tracking().Append(ctx, seed); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = OrderDetail{
			Order:        order,
			Items:        orderItems,
			TrackingInfo: []model.TrackingEvent{seed},
		}
		return nil
	})

	if err != nil {
		return OrderDetail{}, err
	}
	return out, nil
}

// ListOrders scopes by role: buyers see their own, sellers see orders
// containing their lines, the admin sees everything.
func (u *OrderUsecase) ListOrders(ctx context.Context, actor Actor) ([]OrderDetail, error) {
	if actor.ID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var (
		orders []model.Order
		err    error
	)
	switch {
	case actor.IsAdmin():
		orders, err = u.orders.ListAll(ctx)
	case actor.IsSeller():
		orders, err = u.orders.ListBySellerID(ctx, actor.ID)
	default:
		orders, err = u.orders.ListByBuyerID(ctx, actor.ID)
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]OrderDetail, 0, len(orders))
	for _, o := range orders {
		detail, err := u.loadDetail(ctx, o)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, actor Actor, orderID int64) (OrderDetail, error) {
	if orderID <= 0 {
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderDetail{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.authorizeRead(ctx, actor, o); err != nil {
		return OrderDetail{}, err
	}
	return u.loadDetail(ctx, o)
}

type TrackingOutput struct {
	OrderNumber   string                `json:"order_number"`
	OrderStatus   model.OrderStatus     `json:"order_status"`
	PaymentStatus model.PaymentStatus   `json:"payment_status"`
	TrackingInfo  []model.TrackingEvent `json:"tracking_info"`
	CreatedAt     time.Time             `json:"created_at"`
}

// TrackOrder is the public, unauthenticated lookup by order number.
func (u *OrderUsecase) TrackOrder(ctx context.Context, orderNumber string) (TrackingOutput, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return TrackingOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order number")
	}

	o, err := u.orders.FindByOrderNumber(ctx, orderNumber)
	if err == repo.ErrNotFound {
		return TrackingOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return TrackingOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	events, err := u.tracking.ListByOrderID(ctx, o.ID)
	if err != nil {
		return TrackingOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return TrackingOutput{
		OrderNumber:   o.OrderNumber,
		OrderStatus:   o.OrderStatus,
		PaymentStatus: o.PaymentStatus,
		TrackingInfo:  events,
		CreatedAt:     o.CreatedAt,
	}, nil
}

type UpdateOrderStatusInput struct {
	Status string
	Note   string
}

// UpdateOrderStatus appends to the tracking timeline and moves the order.
// Cancellation is rejected once the order is delivered, once it is already
// cancelled, or once a commission for it has been settled.
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, actor Actor, orderID int64, in UpdateOrderStatusInput) (OrderDetail, error) {
	if !actor.IsAdmin() && !actor.IsSeller() {
		return OrderDetail{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(in.Status))
	switch newStatus {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusProcessing,
		model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return OrderDetail{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	var out OrderDetail

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !actor.IsAdmin() {
			owns, err := r.OrderItems().ExistsBySeller(ctx, orderID, actor.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !owns {
				return NewHTTPError(http.StatusForbidden, "not authorized")
			}
		}

		if o.OrderStatus == model.OrderStatusCancelled {
			return NewHTTPError(http.StatusConflict, "order is cancelled")
		}
		if newStatus == model.OrderStatusCancelled {
			if o.OrderStatus == model.OrderStatusDelivered {
				return NewHTTPError(http.StatusConflict, "cannot cancel a delivered order")
			}
			paid, err := r.Commissions().HasPaidByOrderID(ctx, orderID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if paid {
				return NewHTTPError(http.StatusConflict, "cannot cancel after commission settlement")
			}
		}

		note := in.Note
		if note == "" {
			note = fmt.Sprintf("Status updated to %s", newStatus)
		}
		if err := r.Tracking().Append(ctx, model.TrackingEvent{
			OrderID:   orderID,
			Status:    string(newStatus),
			Note:      note,
			CreatedAt: time.Now(),
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Orders().UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.OrderStatus = newStatus
		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		events, err := r.Tracking().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = OrderDetail{Order: o, Items: items, TrackingInfo: events}
		return nil
	})

	if err != nil {
		return OrderDetail{}, err
	}
	return out, nil
}

func (u *OrderUsecase) authorizeRead(ctx context.Context, actor Actor, o model.Order) error {
	if actor.IsAdmin() || o.BuyerID == actor.ID {
		return nil
	}
	if actor.IsSeller() {
		owns, err := u.items.ExistsBySeller(ctx, o.ID, actor.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if owns {
			return nil
		}
	}
	return NewHTTPError(http.StatusForbidden, "not authorized")
}

func (u *OrderUsecase) loadDetail(ctx context.Context, o model.Order) (OrderDetail, error) {
	items, err := u.items.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	events, err := u.tracking.ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderDetail{Order: o, Items: items, TrackingInfo: events}, nil
}

// EP-20060102-XXXXXX
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("EP-%s-%s", now.Format("20060102"), suffix)
}
