package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
}

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	ExistsByProductAndUser(ctx context.Context, productID int64, userID int64) (bool, error)
	Create(ctx context.Context, rv model.Review) (model.Review, error)
	// Average rating and count across all reviews of the product.
	AggregateByProductID(ctx context.Context, productID int64) (float64, int64, error)
}
