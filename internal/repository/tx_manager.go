package repository

import "context"

// Repositories visible inside one transaction.
type TxRepos interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Reviews() ReviewRepository
	Inventory() InventoryRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Tracking() TrackingRepository
	Payments() PaymentRepository
	PaymentMethods() PaymentMethodRepository
	SellerPaymentMethods() SellerPaymentMethodRepository
	Commissions() CommissionRepository
	CommissionPayments() CommissionPaymentRepository
	Settings() SettingRepository
}

// Hides begin/commit/rollback from usecases.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
