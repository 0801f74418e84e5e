package repository

import (
	"context"

	"app/internal/domain/model"
)

type PaymentMethodRepository interface {
	List(ctx context.Context, enabledOnly bool) ([]model.PaymentMethod, error)
	FindByID(ctx context.Context, id int64) (model.PaymentMethod, error)
	Create(ctx context.Context, m model.PaymentMethod) (model.PaymentMethod, error)
	Update(ctx context.Context, m model.PaymentMethod) error
	Delete(ctx context.Context, id int64) error
	SetEnabled(ctx context.Context, id int64, enabled bool) error
}

type SellerPaymentMethodRepository interface {
	ListBySellerID(ctx context.Context, sellerID int64, enabledOnly bool) ([]model.SellerPaymentMethod, error)
	FindByID(ctx context.Context, id int64) (model.SellerPaymentMethod, error)
	ExistsBySellerAndMethod(ctx context.Context, sellerID int64, methodID int64) (bool, error)
	Create(ctx context.Context, m model.SellerPaymentMethod) (model.SellerPaymentMethod, error)
	Delete(ctx context.Context, id int64) error
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (model.Setting, error)
	Upsert(ctx context.Context, s model.Setting) error
}
