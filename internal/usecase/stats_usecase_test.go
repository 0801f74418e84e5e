package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStatsUsecase(tx *txReposStub) *usecase.StatsUsecase {
	return usecase.NewStatsUsecase(tx.users, tx.products, tx.orders, tx.payments, tx.commissions, tx.commissionPay)
}

func TestStatsUsecase_AdminStats_AdminOnly(t *testing.T) {
	uc := newStatsUsecase(newTxReposStub())

	_, err := uc.AdminStats(context.Background(), sellerOne)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestStatsUsecase_AdminStats(t *testing.T) {
	tx := newTxReposStub()
	uc := newStatsUsecase(tx)

	tx.users.On("CountAll", mock.Anything).Return(int64(12), nil)
	tx.products.On("CountAll", mock.Anything).Return(int64(30), nil)
	tx.orders.On("CountAll", mock.Anything).Return(int64(8), nil)
	tx.orders.On("SumTotalByPaymentStatus", mock.Anything, model.PaymentStatusCompleted).Return(12500.0, nil)
	tx.payments.On("CountPending", mock.Anything).Return(int64(2), nil)
	tx.commissionPay.On("CountPendingReview", mock.Anything).Return(int64(1), nil)
	tx.commissions.On("SumAmountByStatuses", mock.Anything, (*int64)(nil),
		[]model.CommissionStatus{model.CommissionStatusPaid}).Return(900.0, nil)
	tx.commissions.On("SumAmountByStatuses", mock.Anything, (*int64)(nil),
		mock.Anything).Return(350.0, nil)

	out, err := uc.AdminStats(context.Background(), admin)
	assert.NoError(t, err)
	assert.Equal(t, int64(12), out.TotalUsers)
	assert.Equal(t, 12500.0, out.TotalSales)
	assert.Equal(t, int64(2), out.PendingPayments)
	assert.Equal(t, 900.0, out.CommissionEarned)
}

func TestStatsUsecase_ListUsers_AdminOnly(t *testing.T) {
	uc := newStatsUsecase(newTxReposStub())

	_, err := uc.ListUsers(context.Background(), sellerOne)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestStatsUsecase_ListUsers(t *testing.T) {
	tx := newTxReposStub()
	uc := newStatsUsecase(tx)

	tx.users.On("ListAll", mock.Anything).Return([]model.User{
		{ID: 1, Email: "admin@ethoparts.com"},
		{ID: 2, Email: "kebede@example.com"},
	}, nil)

	out, err := uc.ListUsers(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestStatsUsecase_SellerStats_SellerOnly(t *testing.T) {
	uc := newStatsUsecase(newTxReposStub())

	_, err := uc.SellerStats(context.Background(), buyer)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestStatsUsecase_SellerStats(t *testing.T) {
	tx := newTxReposStub()
	uc := newStatsUsecase(tx)

	tx.products.On("CountBySellerID", mock.Anything, sellerOne.ID).Return(int64(5), nil)
	tx.orders.On("SellerCompletedSales", mock.Anything, sellerOne.ID).Return(int64(3), 4500.0, nil)
	tx.commissions.On("SumAmountByStatuses", mock.Anything, &sellerOne.ID,
		[]model.CommissionStatus{model.CommissionStatusPaid}).Return(200.0, nil)
	tx.commissions.On("SumAmountByStatuses", mock.Anything, &sellerOne.ID,
		mock.Anything).Return(250.0, nil)

	out, err := uc.SellerStats(context.Background(), sellerOne)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.TotalProducts)
	assert.Equal(t, int64(3), out.CompletedOrders)
	assert.Equal(t, 4500.0, out.TotalSales)
	assert.Equal(t, 250.0, out.CommissionOwed)
	assert.Equal(t, 200.0, out.CommissionPaid)
}
