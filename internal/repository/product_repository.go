package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductListQuery struct {
	Page       int
	Limit      int
	CategoryID *int64
	SellerID   *int64
	Condition  string
	Brand      string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
}

type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error
	SetRating(ctx context.Context, id int64, avg float64, count int64) error
	CountAll(ctx context.Context) (int64, error)
	CountBySellerID(ctx context.Context, sellerID int64) (int64, error)
}

type InventoryRepository interface {
	// Decrements only when stock covers qty; false means not enough.
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	IncreaseStock(ctx context.Context, productID int64, qty int64) error
}
