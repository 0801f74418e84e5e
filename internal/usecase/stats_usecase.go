package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type StatsUsecase struct {
	users              repo.UserRepository
	products           repo.ProductRepository
	orders             repo.OrderRepository
	payments           repo.PaymentRepository
	commissions        repo.CommissionRepository
	commissionPayments repo.CommissionPaymentRepository
}

func NewStatsUsecase(
	users repo.UserRepository,
	products repo.ProductRepository,
	orders repo.OrderRepository,
	payments repo.PaymentRepository,
	commissions repo.CommissionRepository,
	commissionPayments repo.CommissionPaymentRepository,
) *StatsUsecase {
	return &StatsUsecase{
		users:              users,
		products:           products,
		orders:             orders,
		payments:           payments,
		commissions:        commissions,
		commissionPayments: commissionPayments,
	}
}

type AdminStatsOutput struct {
	TotalUsers                int64   `json:"total_users"`
	TotalProducts             int64   `json:"total_products"`
	TotalOrders               int64   `json:"total_orders"`
	TotalSales                float64 `json:"total_sales"`
	PendingPayments           int64   `json:"pending_payments"`
	PendingCommissionPayments int64   `json:"pending_commission_payments"`
	CommissionEarned          float64 `json:"commission_earned"`
	CommissionPending         float64 `json:"commission_pending"`
}

func (u *StatsUsecase) AdminStats(ctx context.Context, actor Actor) (AdminStatsOutput, error) {
	if !actor.IsAdmin() {
		return AdminStatsOutput{}, NewHTTPError(http.StatusForbidden, "admin only")
	}

	var out AdminStatsOutput
	var err error

	if out.TotalUsers, err = u.users.CountAll(ctx); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalProducts, err = u.products.CountAll(ctx); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalOrders, err = u.orders.CountAll(ctx); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalSales, err = u.orders.SumTotalByPaymentStatus(ctx, model.PaymentStatusCompleted); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.PendingPayments, err = u.payments.CountPending(ctx); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.PendingCommissionPayments, err = u.commissionPayments.CountPendingReview(ctx); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.CommissionEarned, err = u.commissions.SumAmountByStatuses(ctx, nil,
		[]model.CommissionStatus{model.CommissionStatusPaid}); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.CommissionPending, err = u.commissions.SumAmountByStatuses(ctx, nil, openCommissionStatuses); err != nil {
		return AdminStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}

func (u *StatsUsecase) ListUsers(ctx context.Context, actor Actor) ([]model.User, error) {
	if !actor.IsAdmin() {
		return nil, NewHTTPError(http.StatusForbidden, "admin only")
	}

	users, err := u.users.ListAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

type SellerStatsOutput struct {
	TotalProducts   int64   `json:"total_products"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalSales      float64 `json:"total_sales"`
	CommissionOwed  float64 `json:"commission_owed"`
	CommissionPaid  float64 `json:"commission_paid"`
}

func (u *StatsUsecase) SellerStats(ctx context.Context, actor Actor) (SellerStatsOutput, error) {
	if !actor.IsSeller() {
		return SellerStatsOutput{}, NewHTTPError(http.StatusForbidden, "seller only")
	}

	var out SellerStatsOutput
	var err error

	if out.TotalProducts, err = u.products.CountBySellerID(ctx, actor.ID); err != nil {
		return SellerStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.CompletedOrders, out.TotalSales, err = u.orders.SellerCompletedSales(ctx, actor.ID); err != nil {
		return SellerStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.CommissionOwed, err = u.commissions.SumAmountByStatuses(ctx, &actor.ID, openCommissionStatuses); err != nil {
		return SellerStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.CommissionPaid, err = u.commissions.SumAmountByStatuses(ctx, &actor.ID,
		[]model.CommissionStatus{model.CommissionStatusPaid}); err != nil {
		return SellerStatsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return out, nil
}
