package usecase_test

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, u model.User) (model.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(model.User)
	return created, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) Create(ctx context.Context, c model.Category) (model.Category, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Category)
	return created, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProductRepoMock) SetRating(ctx context.Context, id int64, avg float64, count int64) error {
	args := m.Called(ctx, id, avg, count)
	return args.Error(0)
}

func (m *ProductRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepoMock) CountBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ExistsByProductAndUser(ctx context.Context, productID int64, userID int64) (bool, error) {
	args := m.Called(ctx, productID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *ReviewRepoMock) Create(ctx context.Context, rv model.Review) (model.Review, error) {
	args := m.Called(ctx, rv)
	created, _ := args.Get(0).(model.Review)
	return created, args.Error(1)
}

func (m *ReviewRepoMock) AggregateByProductID(ctx context.Context, productID int64) (float64, int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error) {
	args := m.Called(ctx, orderNumber)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByBuyerID(ctx context.Context, buyerID int64) ([]model.Order, error) {
	args := m.Called(ctx, buyerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Order, error) {
	args := m.Called(ctx, sellerID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdatePaymentStatusIf(ctx context.Context, orderID int64, from []model.PaymentStatus, to model.PaymentStatus) (bool, error) {
	args := m.Called(ctx, orderID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) SumTotalByPaymentStatus(ctx context.Context, status model.PaymentStatus) (float64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *OrderRepoMock) SellerCompletedSales(ctx context.Context, sellerID int64) (int64, float64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) ExistsBySeller(ctx context.Context, orderID int64, sellerID int64) (bool, error) {
	args := m.Called(ctx, orderID, sellerID)
	return args.Bool(0), args.Error(1)
}

type TrackingRepoMock struct{ mock.Mock }

func (m *TrackingRepoMock) Append(ctx context.Context, ev model.TrackingEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *TrackingRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.TrackingEvent, error) {
	args := m.Called(ctx, orderID)
	events, _ := args.Get(0).([]model.TrackingEvent)
	return events, args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

func (m *PaymentRepoMock) Create(ctx context.Context, p model.Payment) (model.Payment, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Payment)
	return created, args.Error(1)
}

func (m *PaymentRepoMock) FindByID(ctx context.Context, id int64) (model.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) ListPending(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	payments, _ := args.Get(0).([]model.Payment)
	return payments, args.Error(1)
}

func (m *PaymentRepoMock) ListPendingBySeller(ctx context.Context, sellerID int64) ([]model.Payment, error) {
	args := m.Called(ctx, sellerID)
	payments, _ := args.Get(0).([]model.Payment)
	return payments, args.Error(1)
}

func (m *PaymentRepoMock) UpdateStatusIf(ctx context.Context, id int64, from model.PaymentClaimStatus, to model.PaymentClaimStatus, resolvedBy int64, resolvedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, resolvedBy, resolvedAt)
	return args.Bool(0), args.Error(1)
}

func (m *PaymentRepoMock) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type PaymentMethodRepoMock struct{ mock.Mock }

func (m *PaymentMethodRepoMock) List(ctx context.Context, enabledOnly bool) ([]model.PaymentMethod, error) {
	args := m.Called(ctx, enabledOnly)
	methods, _ := args.Get(0).([]model.PaymentMethod)
	return methods, args.Error(1)
}

func (m *PaymentMethodRepoMock) FindByID(ctx context.Context, id int64) (model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	pm, _ := args.Get(0).(model.PaymentMethod)
	return pm, args.Error(1)
}

func (m *PaymentMethodRepoMock) Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error) {
	args := m.Called(ctx, pm)
	created, _ := args.Get(0).(model.PaymentMethod)
	return created, args.Error(1)
}

func (m *PaymentMethodRepoMock) Update(ctx context.Context, pm model.PaymentMethod) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *PaymentMethodRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PaymentMethodRepoMock) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	args := m.Called(ctx, id, enabled)
	return args.Error(0)
}

type SellerPaymentMethodRepoMock struct{ mock.Mock }

func (m *SellerPaymentMethodRepoMock) ListBySellerID(ctx context.Context, sellerID int64, enabledOnly bool) ([]model.SellerPaymentMethod, error) {
	args := m.Called(ctx, sellerID, enabledOnly)
	rows, _ := args.Get(0).([]model.SellerPaymentMethod)
	return rows, args.Error(1)
}

func (m *SellerPaymentMethodRepoMock) FindByID(ctx context.Context, id int64) (model.SellerPaymentMethod, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(model.SellerPaymentMethod)
	return row, args.Error(1)
}

func (m *SellerPaymentMethodRepoMock) ExistsBySellerAndMethod(ctx context.Context, sellerID int64, methodID int64) (bool, error) {
	args := m.Called(ctx, sellerID, methodID)
	return args.Bool(0), args.Error(1)
}

func (m *SellerPaymentMethodRepoMock) Create(ctx context.Context, row model.SellerPaymentMethod) (model.SellerPaymentMethod, error) {
	args := m.Called(ctx, row)
	created, _ := args.Get(0).(model.SellerPaymentMethod)
	return created, args.Error(1)
}

func (m *SellerPaymentMethodRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CommissionRepoMock struct{ mock.Mock }

func (m *CommissionRepoMock) Create(ctx context.Context, c model.Commission) (model.Commission, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Commission)
	return created, args.Error(1)
}

func (m *CommissionRepoMock) FindByID(ctx context.Context, id int64) (model.Commission, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Commission)
	return c, args.Error(1)
}

func (m *CommissionRepoMock) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Commission, error) {
	args := m.Called(ctx, sellerID)
	rows, _ := args.Get(0).([]model.Commission)
	return rows, args.Error(1)
}

func (m *CommissionRepoMock) ListAll(ctx context.Context) ([]model.Commission, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.Commission)
	return rows, args.Error(1)
}

func (m *CommissionRepoMock) UpdateStatusIf(ctx context.Context, id int64, from []model.CommissionStatus, to model.CommissionStatus, resolvedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, resolvedAt)
	return args.Bool(0), args.Error(1)
}

func (m *CommissionRepoMock) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommissionRepoMock) HasPaidByOrderID(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *CommissionRepoMock) SumAmountByStatuses(ctx context.Context, sellerID *int64, statuses []model.CommissionStatus) (float64, error) {
	args := m.Called(ctx, sellerID, statuses)
	return args.Get(0).(float64), args.Error(1)
}

func (m *CommissionRepoMock) Count(ctx context.Context, sellerID *int64) (int64, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).(int64), args.Error(1)
}

type CommissionPaymentRepoMock struct{ mock.Mock }

func (m *CommissionPaymentRepoMock) Create(ctx context.Context, p model.CommissionPayment) (model.CommissionPayment, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.CommissionPayment)
	return created, args.Error(1)
}

func (m *CommissionPaymentRepoMock) FindByID(ctx context.Context, id int64) (model.CommissionPayment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.CommissionPayment)
	return p, args.Error(1)
}

func (m *CommissionPaymentRepoMock) ListPendingReview(ctx context.Context) ([]model.CommissionPayment, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CommissionPayment)
	return rows, args.Error(1)
}

func (m *CommissionPaymentRepoMock) UpdateStatusIf(ctx context.Context, id int64, from model.CommissionPaymentStatus, to model.CommissionPaymentStatus, resolvedBy int64, resolvedAt time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, resolvedBy, resolvedAt)
	return args.Bool(0), args.Error(1)
}

func (m *CommissionPaymentRepoMock) CountPendingReview(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type SettingRepoMock struct{ mock.Mock }

func (m *SettingRepoMock) Get(ctx context.Context, key string) (model.Setting, error) {
	args := m.Called(ctx, key)
	s, _ := args.Get(0).(model.Setting)
	return s, args.Error(1)
}

func (m *SettingRepoMock) Upsert(ctx context.Context, s model.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// =====================
// Transaction stub
// =====================

// txReposStub bundles the mocks behind the transactional view. WithinTx just
// runs the function; commit/rollback behavior is not under test here.
type txReposStub struct {
	users         *UserRepoMock
	categories    *CategoryRepoMock
	products      *ProductRepoMock
	reviews       *ReviewRepoMock
	inventory     *InventoryRepoMock
	orders        *OrderRepoMock
	orderItems    *OrderItemRepoMock
	tracking      *TrackingRepoMock
	payments      *PaymentRepoMock
	methods       *PaymentMethodRepoMock
	sellerMethods *SellerPaymentMethodRepoMock
	commissions   *CommissionRepoMock
	commissionPay *CommissionPaymentRepoMock
	settings      *SettingRepoMock
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		users:         new(UserRepoMock),
		categories:    new(CategoryRepoMock),
		products:      new(ProductRepoMock),
		reviews:       new(ReviewRepoMock),
		inventory:     new(InventoryRepoMock),
		orders:        new(OrderRepoMock),
		orderItems:    new(OrderItemRepoMock),
		tracking:      new(TrackingRepoMock),
		payments:      new(PaymentRepoMock),
		methods:       new(PaymentMethodRepoMock),
		sellerMethods: new(SellerPaymentMethodRepoMock),
		commissions:   new(CommissionRepoMock),
		commissionPay: new(CommissionPaymentRepoMock),
		settings:      new(SettingRepoMock),
	}
}

func (s *txReposStub) Users() repo.UserRepository                               { return s.users }
func (s *txReposStub) Categories() repo.CategoryRepository                      { return s.categories }
func (s *txReposStub) Products() repo.ProductRepository                         { return s.products }
func (s *txReposStub) Reviews() repo.ReviewRepository                           { return s.reviews }
func (s *txReposStub) Inventory() repo.InventoryRepository                      { return s.inventory }
func (s *txReposStub) Orders() repo.OrderRepository                             { return s.orders }
func (s *txReposStub) OrderItems() repo.OrderItemRepository                     { return s.orderItems }
func (s *txReposStub) Tracking() repo.TrackingRepository                        { return s.tracking }
func (s *txReposStub) Payments() repo.PaymentRepository                         { return s.payments }
func (s *txReposStub) PaymentMethods() repo.PaymentMethodRepository             { return s.methods }
func (s *txReposStub) SellerPaymentMethods() repo.SellerPaymentMethodRepository { return s.sellerMethods }
func (s *txReposStub) Commissions() repo.CommissionRepository                   { return s.commissions }
func (s *txReposStub) CommissionPayments() repo.CommissionPaymentRepository     { return s.commissionPay }
func (s *txReposStub) Settings() repo.SettingRepository                         { return s.settings }

type txManagerStub struct {
	repos *txReposStub
}

func (t *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(t.repos)
}
