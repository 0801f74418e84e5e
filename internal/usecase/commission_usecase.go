package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CommissionUsecase struct {
	tx          repo.TransactionManager
	commissions repo.CommissionRepository
	payments    repo.CommissionPaymentRepository
	users       repo.UserRepository
}

func NewCommissionUsecase(
	tx repo.TransactionManager,
	commissions repo.CommissionRepository,
	payments repo.CommissionPaymentRepository,
	users repo.UserRepository,
) *CommissionUsecase {
	return &CommissionUsecase{tx: tx, commissions: commissions, payments: payments, users: users}
}

func (u *CommissionUsecase) List(ctx context.Context, actor Actor) ([]model.Commission, error) {
	switch {
	case actor.IsAdmin():
		commissions, err := u.commissions.ListAll(ctx)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return commissions, nil
	case actor.IsSeller():
		commissions, err := u.commissions.ListBySellerID(ctx, actor.ID)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return commissions, nil
	default:
		return nil, NewHTTPError(http.StatusForbidden, "not authorized")
	}
}

type PayCommissionInput struct {
	TransactionRef string
	ReceiptImage   string
}

type CommissionResult struct {
	Commission model.Commission        `json:"commission"`
	Payment    model.CommissionPayment `json:"payment"`
}

// PayCommission records the seller's settlement submission. Legal only from
// pending or overdue; a submission already under review cannot be stacked.
func (u *CommissionUsecase) PayCommission(ctx context.Context, actor Actor, commissionID int64, in PayCommissionInput) (CommissionResult, error) {
	if commissionID <= 0 {
		return CommissionResult{}, NewHTTPError(http.StatusBadRequest, "invalid commission id")
	}
	if strings.TrimSpace(in.TransactionRef) == "" {
		return CommissionResult{}, NewHTTPError(http.StatusBadRequest, "transaction reference is required")
	}
	if err := validateReceipt(in.ReceiptImage); err != nil {
		return CommissionResult{}, err
	}

	var out CommissionResult

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		c, err := r.Commissions().FindByID(ctx, commissionID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "commission not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !actor.IsAdmin() && c.SellerID != actor.ID {
			return NewHTTPError(http.StatusForbidden, "not authorized")
		}

		ok, err := r.Commissions().UpdateStatusIf(ctx, c.ID,
			[]model.CommissionStatus{model.CommissionStatusPending, model.CommissionStatusOverdue},
			model.CommissionStatusPendingVerification, nil)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "commission is not payable")
		}

		p, err := r.CommissionPayments().Create(ctx, model.CommissionPayment{
			CommissionID:   c.ID,
			SellerID:       c.SellerID,
			Amount:         c.CommissionAmount,
			TransactionRef: in.TransactionRef,
			ReceiptImage:   in.ReceiptImage,
			Status:         model.CommissionPaymentPendingReview,
			CreatedAt:      time.Now(),
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		c.Status = model.CommissionStatusPendingVerification
		out = CommissionResult{Commission: c, Payment: p}
		return nil
	})

	if err != nil {
		return CommissionResult{}, err
	}
	return out, nil
}

// ConfirmPayment settles the commission. Only legal while the submission is
// under review and the commission awaits verification.
func (u *CommissionUsecase) ConfirmPayment(ctx context.Context, actor Actor, paymentID int64) (CommissionResult, error) {
	if !actor.IsAdmin() {
		return CommissionResult{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	if paymentID <= 0 {
		return CommissionResult{}, NewHTTPError(http.StatusBadRequest, "invalid payment id")
	}

	var out CommissionResult

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.CommissionPayments().FindByID(ctx, paymentID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "payment not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		ok, err := r.CommissionPayments().UpdateStatusIf(ctx, p.ID,
			model.CommissionPaymentPendingReview, model.CommissionPaymentConfirmed, actor.ID, now)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "payment is not awaiting review")
		}

		ok, err = r.Commissions().UpdateStatusIf(ctx, p.CommissionID,
			[]model.CommissionStatus{model.CommissionStatusPendingVerification},
			model.CommissionStatusPaid, &now)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusConflict, "commission is not awaiting verification")
		}

		c, err := r.Commissions().FindByID(ctx, p.CommissionID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		p.Status = model.CommissionPaymentConfirmed
		p.ResolvedBy = &actor.ID
		p.ResolvedAt = &now
		out = CommissionResult{Commission: c, Payment: p}
		return nil
	})

	if err != nil {
		return CommissionResult{}, err
	}
	return out, nil
}

type PendingCommissionPaymentOutput struct {
	model.CommissionPayment
	OrderNumber      string  `json:"order_number"`
	CommissionAmount float64 `json:"commission_amount"`
	SellerName       string  `json:"seller_name,omitempty"`
}

func (u *CommissionUsecase) ListPendingPayments(ctx context.Context, actor Actor) ([]PendingCommissionPaymentOutput, error) {
	if !actor.IsAdmin() {
		return nil, NewHTTPError(http.StatusForbidden, "admin only")
	}

	payments, err := u.payments.ListPendingReview(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]PendingCommissionPaymentOutput, 0, len(payments))
	for _, p := range payments {
		row := PendingCommissionPaymentOutput{CommissionPayment: p}
		if c, err := u.commissions.FindByID(ctx, p.CommissionID); err == nil {
			row.OrderNumber = c.OrderNumber
			row.CommissionAmount = c.CommissionAmount
		}
		if s, err := u.users.FindByID(ctx, p.SellerID); err == nil {
			if s.BusinessName != "" {
				row.SellerName = s.BusinessName
			} else {
				row.SellerName = s.Name
			}
		}
		out = append(out, row)
	}
	return out, nil
}

type CommissionStats struct {
	TotalEarned      float64 `json:"total_earned,omitempty"`
	PendingAmount    float64 `json:"pending_amount,omitempty"`
	TotalOwed        float64 `json:"total_owed,omitempty"`
	PaidAmount       float64 `json:"paid_amount,omitempty"`
	TotalCommissions int64   `json:"total_commissions"`
}

var openCommissionStatuses = []model.CommissionStatus{
	model.CommissionStatusPending,
	model.CommissionStatusOverdue,
	model.CommissionStatusPendingVerification,
}

func (u *CommissionUsecase) Stats(ctx context.Context, actor Actor) (CommissionStats, error) {
	var sellerID *int64
	switch {
	case actor.IsAdmin():
	case actor.IsSeller():
		sellerID = &actor.ID
	default:
		return CommissionStats{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}

	paid, err := u.commissions.SumAmountByStatuses(ctx, sellerID, []model.CommissionStatus{model.CommissionStatusPaid})
	if err != nil {
		return CommissionStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	open, err := u.commissions.SumAmountByStatuses(ctx, sellerID, openCommissionStatuses)
	if err != nil {
		return CommissionStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	total, err := u.commissions.Count(ctx, sellerID)
	if err != nil {
		return CommissionStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if actor.IsAdmin() {
		return CommissionStats{TotalEarned: paid, PendingAmount: open, TotalCommissions: total}, nil
	}
	return CommissionStats{TotalOwed: open, PaidAmount: paid, TotalCommissions: total}, nil
}

// SweepOverdue reclassifies pending commissions past their due date. It is
// idempotent and never touches rows already in pending_verification or paid.
func (u *CommissionUsecase) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	return u.commissions.MarkOverdue(ctx, now)
}
