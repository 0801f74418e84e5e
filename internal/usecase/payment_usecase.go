package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

const (
	CommissionRate     = 0.10
	CommissionDueAfter = 48 * time.Hour
)

type PaymentUsecase struct {
	tx       repo.TransactionManager
	payments repo.PaymentRepository
	orders   repo.OrderRepository
	items    repo.OrderItemRepository
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	payments repo.PaymentRepository,
	orders repo.OrderRepository,
	items repo.OrderItemRepository,
) *PaymentUsecase {
	return &PaymentUsecase{tx: tx, payments: payments, orders: orders, items: items}
}

type SubmitPaymentClaimInput struct {
	OrderID        int64
	TransactionRef string
	ReceiptImage   string
}

type PaymentResult struct {
	Payment model.Payment `json:"payment"`
	Order   OrderDetail   `json:"order"`
}

// SubmitPaymentClaim records the buyer's transfer assertion and moves the
// order to pending_verification. Legal only from pending or rejected, so a
// rejected claim can be resubmitted but a pending or completed one cannot
// be stacked.
func (u *PaymentUsecase) SubmitPaymentClaim(ctx context.Context, actor Actor, in SubmitPaymentClaimInput) (PaymentResult, error) {
	if in.OrderID <= 0 {
		return PaymentResult{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if strings.TrimSpace(in.TransactionRef) == "" {
		return PaymentResult{}, NewHTTPError(http.StatusBadRequest, "transaction reference is required")
	}
	if err := validateReceipt(in.ReceiptImage); err != nil {
		return PaymentResult{}, err
	}

	var out PaymentResult

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, in.OrderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.BuyerID != actor.ID {
			return NewHTTPError(http.StatusForbidden, "not authorized")
		}

		// Conditional transition doubles as the at-most-one-active-claim
		// guard: a second submit loses here.
		ok, err := r.Orders().UpdatePaymentStatusIf(ctx, o.ID,
			[]model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusRejected},
			model.PaymentStatusPendingVerification)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "payment already submitted or completed")
		}

		now := time.Now()
		p, err := r.Payments().Create(ctx, model.Payment{
			OrderID:        o.ID,
			BuyerID:        actor.ID,
			TransactionRef: in.TransactionRef,
			ReceiptImage:   in.ReceiptImage,
			Status:         model.ClaimStatusPendingVerification,
			CreatedAt:      now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Tracking().Append(ctx, model.TrackingEvent{
			OrderID:   o.ID,
			Status:    "Receipt Uploaded",
			Note:      fmt.Sprintf("Payment receipt uploaded. Reference: %s", in.TransactionRef),
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.PaymentStatus = model.PaymentStatusPendingVerification
		detail, err := loadOrderDetail(ctx, r, o)
		if err != nil {
			return err
		}
		out = PaymentResult{Payment: p, Order: detail}
		return nil
	})

	if err != nil {
		return PaymentResult{}, err
	}
	return out, nil
}

// ConfirmPayment completes the claim, decrements stock exactly once, and
// derives one commission per seller, all inside one transaction. Any
// insufficient line aborts the whole confirmation.
func (u *PaymentUsecase) ConfirmPayment(ctx context.Context, actor Actor, paymentID int64) (PaymentResult, error) {
	if paymentID <= 0 {
		return PaymentResult{}, NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	var out PaymentResult

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, o, err := u.loadClaim(ctx, r, actor, paymentID)
		if err != nil {
			return err
		}

		now := time.Now()

		// Losing a concurrent confirm/reject race lands here, which also
		// makes a double confirm fail instead of double-decrementing.
		ok, err := r.Payments().UpdateStatusIf(ctx, p.ID,
			model.ClaimStatusPendingVerification, model.ClaimStatusCompleted, actor.ID, now)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "payment is not awaiting verification")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, it := range items {
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, it.ProductID, it.Quantity)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !ok {
				return NewHTTPError(http.StatusConflict,
					fmt.Sprintf("insufficient stock for %s", it.ProductNameSnapshot))
			}
		}

		ok, err = r.Orders().UpdatePaymentStatusIf(ctx, o.ID,
			[]model.PaymentStatus{model.PaymentStatusPendingVerification},
			model.PaymentStatusCompleted)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "order payment is not awaiting verification")
		}
		if err := r.Orders().UpdateOrderStatus(ctx, o.ID, model.OrderStatusConfirmed); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Tracking().Append(ctx, model.TrackingEvent{
			OrderID:   o.ID,
			Status:    "Payment Confirmed",
			Note:      "Payment has been verified and confirmed",
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		// One commission per distinct seller, amount fixed at creation.
		perSeller := map[int64]float64{}
		for _, it := range items {
			perSeller[it.SellerID] = round2(perSeller[it.SellerID] + it.LineTotal)
		}
		for sellerID, sale := range perSeller {
			_, err := r.Commissions().Create(ctx, model.Commission{
				OrderID:          o.ID,
				OrderNumber:      o.OrderNumber,
				SellerID:         sellerID,
				SaleAmount:       sale,
				CommissionAmount: round2(sale * CommissionRate),
				CommissionRate:   CommissionRate,
				Status:           model.CommissionStatusPending,
				DueDate:          now.Add(CommissionDueAfter),
				CreatedAt:        now,
			})
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		p.Status = model.ClaimStatusCompleted
		p.ResolvedBy = &actor.ID
		p.ResolvedAt = &now
		o.PaymentStatus = model.PaymentStatusCompleted
		o.OrderStatus = model.OrderStatusConfirmed
		detail, err := loadOrderDetail(ctx, r, o)
		if err != nil {
			return err
		}
		out = PaymentResult{Payment: p, Order: detail}
		return nil
	})

	if err != nil {
		return PaymentResult{}, err
	}
	return out, nil
}

// RejectPayment sends the claim back so the buyer can resubmit.
func (u *PaymentUsecase) RejectPayment(ctx context.Context, actor Actor, paymentID int64) (PaymentResult, error) {
	if paymentID <= 0 {
		return PaymentResult{}, NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	var out PaymentResult

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, o, err := u.loadClaim(ctx, r, actor, paymentID)
		if err != nil {
			return err
		}

		now := time.Now()
		ok, err := r.Payments().UpdateStatusIf(ctx, p.ID,
			model.ClaimStatusPendingVerification, model.ClaimStatusRejected, actor.ID, now)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "payment is not awaiting verification")
		}

		ok, err = r.Orders().UpdatePaymentStatusIf(ctx, o.ID,
			[]model.PaymentStatus{model.PaymentStatusPendingVerification},
			model.PaymentStatusRejected)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "order payment is not awaiting verification")
		}

		if err := r.Tracking().Append(ctx, model.TrackingEvent{
			OrderID:   o.ID,
			Status:    "Payment Rejected",
			Note:      "Payment verification failed. Please upload a valid receipt.",
			CreatedAt: now,
		}); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p.Status = model.ClaimStatusRejected
		p.ResolvedBy = &actor.ID
		p.ResolvedAt = &now
		o.PaymentStatus = model.PaymentStatusRejected
		detail, err := loadOrderDetail(ctx, r, o)
		if err != nil {
			return err
		}
		out = PaymentResult{Payment: p, Order: detail}
		return nil
	})

	if err != nil {
		return PaymentResult{}, err
	}
	return out, nil
}

type PendingPaymentOutput struct {
	model.Payment
	OrderNumber       string  `json:"order_number"`
	TotalAmount       float64 `json:"total_amount"`
	PaymentMethodName string  `json:"payment_method_name,omitempty"`
}

// ListPending scopes to the actor's authority: admin sees every claim,
// a seller only those on orders containing their lines.
func (u *PaymentUsecase) ListPending(ctx context.Context, actor Actor) ([]PendingPaymentOutput, error) {
	var (
		payments []model.Payment
		err      error
	)
	switch {
	case actor.IsAdmin():
		payments, err = u.payments.ListPending(ctx)
	case actor.IsSeller():
		payments, err = u.payments.ListPendingBySeller(ctx, actor.ID)
	default:
		return nil, NewHTTPError(http.StatusForbidden, "not authorized")
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PendingPaymentOutput, 0, len(payments))
	for _, p := range payments {
		o, err := u.orders.FindByID(ctx, p.OrderID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = append(out, PendingPaymentOutput{
			Payment:           p,
			OrderNumber:       o.OrderNumber,
			TotalAmount:       o.TotalAmount,
			PaymentMethodName: o.PaymentMethodName,
		})
	}
	return out, nil
}

// Admin may act on any claim; a seller only on claims paid into their own
// receiving account. Owning a line in the order is not enough, the money
// landed in exactly one seller's account.
func (u *PaymentUsecase) loadClaim(ctx context.Context, r repo.TxRepos, actor Actor, paymentID int64) (model.Payment, model.Order, error) {
	if !actor.IsAdmin() && !actor.IsSeller() {
		return model.Payment{}, model.Order{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}

	p, err := r.Payments().FindByID(ctx, paymentID)
	if err == repo.ErrNotFound {
		return model.Payment{}, model.Order{}, NewHTTPError(http.StatusNotFound, "payment not found")
	}
	if err != nil {
		return model.Payment{}, model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o, err := r.Orders().FindByID(ctx, p.OrderID)
	if err == repo.ErrNotFound {
		return model.Payment{}, model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Payment{}, model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !actor.IsAdmin() {
		spm, err := r.SellerPaymentMethods().FindByID(ctx, o.PaymentMethodID)
		if err == repo.ErrNotFound {
			return model.Payment{}, model.Order{}, NewHTTPError(http.StatusForbidden, "not authorized")
		}
		if err != nil {
			return model.Payment{}, model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if spm.SellerID != actor.ID {
			return model.Payment{}, model.Order{}, NewHTTPError(http.StatusForbidden, "not authorized")
		}
	}
	return p, o, nil
}

func loadOrderDetail(ctx context.Context, r repo.TxRepos, o model.Order) (OrderDetail, error) {
	items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	events, err := r.Tracking().ListByOrderID(ctx, o.ID)
	if err != nil {
		return OrderDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return OrderDetail{Order: o, Items: items, TrackingInfo: events}, nil
}
