package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users                *UserGormRepository
	categories           *CategoryGormRepository
	products             *ProductGormRepository
	reviews              *ReviewGormRepository
	inventory            *InventoryGormRepository
	orders               *OrderGormRepository
	orderItems           *OrderItemGormRepository
	tracking             *TrackingGormRepository
	payments             *PaymentGormRepository
	paymentMethods       *PaymentMethodGormRepository
	sellerPaymentMethods *SellerPaymentMethodGormRepository
	commissions          *CommissionGormRepository
	commissionPayments   *CommissionPaymentGormRepository
	settings             *SettingGormRepository
}

func (r *txReposGorm) Users() repo.UserRepository             { return r.users }
func (r *txReposGorm) Categories() repo.CategoryRepository    { return r.categories }
func (r *txReposGorm) Products() repo.ProductRepository       { return r.products }
func (r *txReposGorm) Reviews() repo.ReviewRepository         { return r.reviews }
func (r *txReposGorm) Inventory() repo.InventoryRepository    { return r.inventory }
func (r *txReposGorm) Orders() repo.OrderRepository           { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository   { return r.orderItems }
func (r *txReposGorm) Tracking() repo.TrackingRepository      { return r.tracking }
func (r *txReposGorm) Payments() repo.PaymentRepository       { return r.payments }
func (r *txReposGorm) PaymentMethods() repo.PaymentMethodRepository {
	return r.paymentMethods
}
func (r *txReposGorm) SellerPaymentMethods() repo.SellerPaymentMethodRepository {
	return r.sellerPaymentMethods
}
func (r *txReposGorm) Commissions() repo.CommissionRepository { return r.commissions }
func (r *txReposGorm) CommissionPayments() repo.CommissionPaymentRepository {
	return r.commissionPayments
}
func (r *txReposGorm) Settings() repo.SettingRepository { return r.settings }

func newTxRepos(tx *gorm.DB) *txReposGorm {
	return &txReposGorm{
		users:                NewUserGormRepository(tx),
		categories:           NewCategoryGormRepository(tx),
		products:             NewProductGormRepository(tx),
		reviews:              NewReviewGormRepository(tx),
		inventory:            NewInventoryGormRepository(tx),
		orders:               NewOrderGormRepository(tx),
		orderItems:           NewOrderItemGormRepository(tx),
		tracking:             NewTrackingGormRepository(tx),
		payments:             NewPaymentGormRepository(tx),
		paymentMethods:       NewPaymentMethodGormRepository(tx),
		sellerPaymentMethods: NewSellerPaymentMethodGormRepository(tx),
		commissions:          NewCommissionGormRepository(tx),
		commissionPayments:   NewCommissionPaymentGormRepository(tx),
		settings:             NewSettingGormRepository(tx),
	}
}

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newTxRepos(tx))
	})
}
