package usecase_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentUsecase(tx *txReposStub) *usecase.PaymentUsecase {
	return usecase.NewPaymentUsecase(&txManagerStub{repos: tx}, tx.payments, tx.orders, tx.orderItems)
}

var (
	admin      = usecase.Actor{ID: 1, Role: model.RoleAdmin}
	sellerOne  = usecase.Actor{ID: 20, Role: model.RoleSeller}
	claimInput = usecase.SubmitPaymentClaimInput{OrderID: 100, TransactionRef: "TB-123456"}
)

func TestPaymentUsecase_Submit_RequiresRef(t *testing.T) {
	uc := newPaymentUsecase(newTxReposStub())

	_, err := uc.SubmitPaymentClaim(context.Background(), buyer, usecase.SubmitPaymentClaimInput{OrderID: 100})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

func TestPaymentUsecase_Submit_OversizedReceiptRejectedBeforeAnyWrite(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	// 6MB decoded payload.
	big := base64.StdEncoding.EncodeToString(make([]byte, 6<<20))
	in := claimInput
	in.ReceiptImage = big

	_, err := uc.SubmitPaymentClaim(context.Background(), buyer, in)
	assertHTTPStatus(t, err, http.StatusRequestEntityTooLarge)
	tx.orders.AssertNotCalled(t, "UpdatePaymentStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	tx.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Submit_Success(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, BuyerID: buyer.ID, PaymentStatus: model.PaymentStatusPending}, nil)
	tx.orders.On("UpdatePaymentStatusIf", mock.Anything, int64(100),
		[]model.PaymentStatus{model.PaymentStatusPending, model.PaymentStatusRejected},
		model.PaymentStatusPendingVerification).Return(true, nil)
	tx.payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 100 && p.BuyerID == buyer.ID && p.Status == model.ClaimStatusPendingVerification
	})).Return(model.Payment{ID: 7, OrderID: 100, Status: model.ClaimStatusPendingVerification}, nil)
	tx.tracking.On("Append", mock.Anything, mock.MatchedBy(func(ev model.TrackingEvent) bool {
		return ev.Status == "Receipt Uploaded" && strings.Contains(ev.Note, "TB-123456")
	})).Return(nil)
	tx.orderItems.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{}, nil)
	tx.tracking.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.TrackingEvent{}, nil)

	out, err := uc.SubmitPaymentClaim(context.Background(), buyer, claimInput)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.Payment.ID)
	assert.Equal(t, model.PaymentStatusPendingVerification, out.Order.PaymentStatus)
}

func TestPaymentUsecase_Submit_SecondClaimConflicts(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, BuyerID: buyer.ID, PaymentStatus: model.PaymentStatusPendingVerification}, nil)
	tx.orders.On("UpdatePaymentStatusIf", mock.Anything, int64(100), mock.Anything, mock.Anything).
		Return(false, nil)

	_, err := uc.SubmitPaymentClaim(context.Background(), buyer, claimInput)
	assertHTTPStatus(t, err, http.StatusConflict)
	tx.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Submit_NotBuyerOfOrder(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, BuyerID: 999}, nil)

	_, err := uc.SubmitPaymentClaim(context.Background(), buyer, claimInput)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func confirmFixture(tx *txReposStub) {
	tx.payments.On("FindByID", mock.Anything, int64(7)).
		Return(model.Payment{ID: 7, OrderID: 100, BuyerID: buyer.ID, Status: model.ClaimStatusPendingVerification}, nil)
	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, OrderNumber: "EP-20260101-AB12CD", BuyerID: buyer.ID, TotalAmount: 2500, PaymentMethodID: 55, PaymentStatus: model.PaymentStatusPendingVerification}, nil)
	tx.orderItems.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{
		{OrderID: 100, ProductID: 1, SellerID: 20, ProductNameSnapshot: "Brake Pad", Quantity: 2, LineTotal: 1000},
		{OrderID: 100, ProductID: 2, SellerID: 30, ProductNameSnapshot: "Oil Filter", Quantity: 1, LineTotal: 1500},
	}, nil)
	tx.tracking.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.TrackingEvent{}, nil)
}

func TestPaymentUsecase_Confirm_DecrementsStockAndCreatesCommissions(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)
	confirmFixture(tx)

	tx.payments.On("UpdateStatusIf", mock.Anything, int64(7),
		model.ClaimStatusPendingVerification, model.ClaimStatusCompleted, admin.ID, mock.Anything).
		Return(true, nil)
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil).Once()
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(1)).Return(true, nil).Once()
	tx.orders.On("UpdatePaymentStatusIf", mock.Anything, int64(100),
		[]model.PaymentStatus{model.PaymentStatusPendingVerification},
		model.PaymentStatusCompleted).Return(true, nil)
	tx.orders.On("UpdateOrderStatus", mock.Anything, int64(100), model.OrderStatusConfirmed).Return(nil)
	tx.tracking.On("Append", mock.Anything, mock.MatchedBy(func(ev model.TrackingEvent) bool {
		return ev.Status == "Payment Confirmed"
	})).Return(nil)

	// One commission per seller, 10% of that seller's lines, due in 48h.
	tx.commissions.On("Create", mock.Anything, mock.MatchedBy(func(c model.Commission) bool {
		return c.SellerID == 20 && c.SaleAmount == 1000 && c.CommissionAmount == 100 &&
			c.Status == model.CommissionStatusPending &&
			c.DueDate.Sub(c.CreatedAt) == 48*time.Hour
	})).Return(model.Commission{}, nil).Once()
	tx.commissions.On("Create", mock.Anything, mock.MatchedBy(func(c model.Commission) bool {
		return c.SellerID == 30 && c.SaleAmount == 1500 && c.CommissionAmount == 150
	})).Return(model.Commission{}, nil).Once()

	out, err := uc.ConfirmPayment(context.Background(), admin, 7)
	assert.NoError(t, err)
	assert.Equal(t, model.ClaimStatusCompleted, out.Payment.Status)
	assert.Equal(t, model.PaymentStatusCompleted, out.Order.PaymentStatus)
	assert.Equal(t, model.OrderStatusConfirmed, out.Order.OrderStatus)

	tx.inventory.AssertNumberOfCalls(t, "DecreaseStockIfEnough", 2)
	tx.commissions.AssertNumberOfCalls(t, "Create", 2)
}

func TestPaymentUsecase_Confirm_SecondConfirmConflicts(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.payments.On("FindByID", mock.Anything, int64(7)).
		Return(model.Payment{ID: 7, OrderID: 100, Status: model.ClaimStatusCompleted}, nil)
	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, PaymentStatus: model.PaymentStatusCompleted}, nil)
	tx.payments.On("UpdateStatusIf", mock.Anything, int64(7),
		model.ClaimStatusPendingVerification, model.ClaimStatusCompleted, admin.ID, mock.Anything).
		Return(false, nil)

	_, err := uc.ConfirmPayment(context.Background(), admin, 7)
	assertHTTPStatus(t, err, http.StatusConflict)

	// The losing confirm must not touch stock or commissions.
	tx.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	tx.commissions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Confirm_InsufficientStockAborts(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)
	confirmFixture(tx)

	tx.payments.On("UpdateStatusIf", mock.Anything, int64(7),
		model.ClaimStatusPendingVerification, model.ClaimStatusCompleted, admin.ID, mock.Anything).
		Return(true, nil)
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(1)).Return(false, nil)

	_, err := uc.ConfirmPayment(context.Background(), admin, 7)
	assertHTTPStatus(t, err, http.StatusConflict)
	tx.commissions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Confirm_SellerNotPaidIntoForbidden(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.payments.On("FindByID", mock.Anything, int64(7)).
		Return(model.Payment{ID: 7, OrderID: 100, Status: model.ClaimStatusPendingVerification}, nil)
	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, PaymentMethodID: 55}, nil)
	// Seller 20 sold a line in the order, but the buyer paid into
	// seller 30's account. Only seller 30 (or admin) may verify.
	tx.sellerMethods.On("FindByID", mock.Anything, int64(55)).
		Return(model.SellerPaymentMethod{ID: 55, SellerID: 30}, nil)

	_, err := uc.ConfirmPayment(context.Background(), sellerOne, 7)
	assertHTTPStatus(t, err, http.StatusForbidden)
	tx.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
	tx.commissions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_Confirm_AccountOwnerSellerAllowed(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)
	confirmFixture(tx)

	tx.sellerMethods.On("FindByID", mock.Anything, int64(55)).
		Return(model.SellerPaymentMethod{ID: 55, SellerID: sellerOne.ID}, nil)
	tx.payments.On("UpdateStatusIf", mock.Anything, int64(7),
		model.ClaimStatusPendingVerification, model.ClaimStatusCompleted, sellerOne.ID, mock.Anything).
		Return(true, nil)
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(1), int64(2)).Return(true, nil)
	tx.inventory.On("DecreaseStockIfEnough", mock.Anything, int64(2), int64(1)).Return(true, nil)
	tx.orders.On("UpdatePaymentStatusIf", mock.Anything, int64(100),
		[]model.PaymentStatus{model.PaymentStatusPendingVerification},
		model.PaymentStatusCompleted).Return(true, nil)
	tx.orders.On("UpdateOrderStatus", mock.Anything, int64(100), model.OrderStatusConfirmed).Return(nil)
	tx.tracking.On("Append", mock.Anything, mock.Anything).Return(nil)
	tx.commissions.On("Create", mock.Anything, mock.Anything).Return(model.Commission{}, nil)

	out, err := uc.ConfirmPayment(context.Background(), sellerOne, 7)
	assert.NoError(t, err)
	assert.Equal(t, model.ClaimStatusCompleted, out.Payment.Status)
}

func TestPaymentUsecase_Confirm_BuyerForbidden(t *testing.T) {
	uc := newPaymentUsecase(newTxReposStub())

	_, err := uc.ConfirmPayment(context.Background(), buyer, 7)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestPaymentUsecase_Reject_MovesOrderBack(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)
	confirmFixture(tx)

	tx.payments.On("UpdateStatusIf", mock.Anything, int64(7),
		model.ClaimStatusPendingVerification, model.ClaimStatusRejected, admin.ID, mock.Anything).
		Return(true, nil)
	tx.orders.On("UpdatePaymentStatusIf", mock.Anything, int64(100),
		[]model.PaymentStatus{model.PaymentStatusPendingVerification},
		model.PaymentStatusRejected).Return(true, nil)
	tx.tracking.On("Append", mock.Anything, mock.MatchedBy(func(ev model.TrackingEvent) bool {
		return ev.Status == "Payment Rejected"
	})).Return(nil)

	out, err := uc.RejectPayment(context.Background(), admin, 7)
	assert.NoError(t, err)
	assert.Equal(t, model.ClaimStatusRejected, out.Payment.Status)
	assert.Equal(t, model.PaymentStatusRejected, out.Order.PaymentStatus)

	// Rejection never touches stock.
	tx.inventory.AssertNotCalled(t, "DecreaseStockIfEnough", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentUsecase_ListPending_BuyerForbidden(t *testing.T) {
	uc := newPaymentUsecase(newTxReposStub())

	_, err := uc.ListPending(context.Background(), buyer)
	assertHTTPStatus(t, err, http.StatusForbidden)
}

func TestPaymentUsecase_ListPending_SellerScoped(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.payments.On("ListPendingBySeller", mock.Anything, sellerOne.ID).
		Return([]model.Payment{{ID: 7, OrderID: 100}}, nil)
	tx.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, OrderNumber: "EP-20260101-AB12CD", TotalAmount: 2500, PaymentMethodName: "Telebirr"}, nil)

	out, err := uc.ListPending(context.Background(), sellerOne)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "EP-20260101-AB12CD", out[0].OrderNumber)
	assert.Equal(t, 2500.0, out[0].TotalAmount)
	tx.payments.AssertNotCalled(t, "ListPending", mock.Anything)
}

func TestPaymentUsecase_Confirm_UnknownPayment(t *testing.T) {
	tx := newTxReposStub()
	uc := newPaymentUsecase(tx)

	tx.payments.On("FindByID", mock.Anything, int64(404)).
		Return(model.Payment{}, repo.ErrNotFound)

	_, err := uc.ConfirmPayment(context.Background(), admin, 404)
	assertHTTPStatus(t, err, http.StatusNotFound)
}
