package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type CatalogUsecase struct {
	tx         repo.TransactionManager
	products   repo.ProductRepository
	categories repo.CategoryRepository
	reviews    repo.ReviewRepository
	users      repo.UserRepository
}

func NewCatalogUsecase(
	tx repo.TransactionManager,
	products repo.ProductRepository,
	categories repo.CategoryRepository,
	reviews repo.ReviewRepository,
	users repo.UserRepository,
) *CatalogUsecase {
	return &CatalogUsecase{tx: tx, products: products, categories: categories, reviews: reviews, users: users}
}

func (u *CatalogUsecase) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := u.categories.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

type CreateCategoryInput struct {
	Name        string
	Description string
	Icon        string
}

func (u *CatalogUsecase) CreateCategory(ctx context.Context, actor Actor, in CreateCategoryInput) (model.Category, error) {
	if !actor.IsAdmin() {
		return model.Category{}, NewHTTPError(http.StatusForbidden, "admin only")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "category name is required")
	}
	c, err := u.categories.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Icon:        in.Icon,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

// ProductOutput decorates a product with names the list and detail pages
// would otherwise have to join for themselves.
type ProductOutput struct {
	model.Product
	CategoryName string `json:"category_name,omitempty"`
	SellerName   string `json:"seller_name,omitempty"`
}

type ProductListOutput struct {
	Products []ProductOutput `json:"products"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	Limit    int             `json:"limit"`
}

func (u *CatalogUsecase) ListProducts(ctx context.Context, q repo.ProductListQuery) (ProductListOutput, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	products, total, err := u.products.List(ctx, q)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductListOutput{
		Products: make([]ProductOutput, 0, len(products)),
		Total:    total,
		Page:     q.Page,
		Limit:    q.Limit,
	}

	categoryNames := map[int64]string{}
	sellerNames := map[int64]string{}
	for _, p := range products {
		row := ProductOutput{Product: p}
		if name, ok := categoryNames[p.CategoryID]; ok {
			row.CategoryName = name
		} else if c, err := u.categories.FindByID(ctx, p.CategoryID); err == nil {
			categoryNames[p.CategoryID] = c.Name
			row.CategoryName = c.Name
		}
		if name, ok := sellerNames[p.SellerID]; ok {
			row.SellerName = name
		} else if s, err := u.users.FindByID(ctx, p.SellerID); err == nil {
			name := s.BusinessName
			if name == "" {
				name = s.Name
			}
			sellerNames[p.SellerID] = name
			row.SellerName = name
		}
		out.Products = append(out.Products, row)
	}
	return out, nil
}

type ProductDetailOutput struct {
	ProductOutput
	Reviews []model.Review `json:"reviews"`
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (ProductDetailOutput, error) {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := ProductDetailOutput{ProductOutput: ProductOutput{Product: p}}
	if c, err := u.categories.FindByID(ctx, p.CategoryID); err == nil {
		out.CategoryName = c.Name
	}
	if s, err := u.users.FindByID(ctx, p.SellerID); err == nil {
		if s.BusinessName != "" {
			out.SellerName = s.BusinessName
		} else {
			out.SellerName = s.Name
		}
	}
	reviews, err := u.reviews.ListByProductID(ctx, p.ID)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.Reviews = reviews
	return out, nil
}

type ProductInput struct {
	Name           string
	Description    string
	Price          float64
	Stock          int64
	Condition      string
	Brand          string
	CategoryID     int64
	Images         []string
	CompatibleCars []string
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "product name is required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock cannot be negative")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "category is required")
	}
	switch model.ProductCondition(in.Condition) {
	case model.ConditionNew, model.ConditionUsed, model.ConditionRefurbished:
	default:
		return NewHTTPError(http.StatusBadRequest, "invalid condition")
	}
	return nil
}

func (u *CatalogUsecase) CreateProduct(ctx context.Context, actor Actor, in ProductInput) (model.Product, error) {
	if !actor.IsSeller() {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "seller only")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}
	if _, err := u.categories.FindByID(ctx, in.CategoryID); err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
	} else if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p, err := u.products.Create(ctx, model.Product{
		SellerID:       actor.ID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		Price:          round2(in.Price),
		Stock:          in.Stock,
		Condition:      model.ProductCondition(in.Condition),
		Brand:          in.Brand,
		CategoryID:     in.CategoryID,
		Images:         in.Images,
		CompatibleCars: in.CompatibleCars,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, actor Actor, id int64, in ProductInput) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !actor.IsAdmin() && p.SellerID != actor.ID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}
	if err := validateProductInput(in); err != nil {
		return model.Product{}, err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = round2(in.Price)
	p.Stock = in.Stock
	p.Condition = model.ProductCondition(in.Condition)
	p.Brand = in.Brand
	p.CategoryID = in.CategoryID
	p.Images = in.Images
	p.CompatibleCars = in.CompatibleCars

	if err := u.products.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, actor Actor, id int64) error {
	p, err := u.products.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !actor.IsAdmin() && p.SellerID != actor.ID {
		return NewHTTPError(http.StatusForbidden, "not authorized")
	}
	if err := u.products.SoftDelete(ctx, p.ID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CatalogUsecase) ListReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	if _, err := u.products.FindByID(ctx, productID); err == repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "product not found")
	} else if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	reviews, err := u.reviews.ListByProductID(ctx, productID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

// CreateReview records one review per buyer per product and refreshes the
// denormalized rating on the product row in the same transaction.
func (u *CatalogUsecase) CreateReview(ctx context.Context, actor Actor, productID int64, in CreateReviewInput) (model.Review, error) {
	if !actor.IsBuyer() {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "buyer only")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	var out model.Review

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		exists, err := r.Reviews().ExistsByProductAndUser(ctx, p.ID, actor.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if exists {
			return NewHTTPError(http.StatusConflict, "product already reviewed")
		}

		user, err := r.Users().FindByID(ctx, actor.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		rv, err := r.Reviews().Create(ctx, model.Review{
			ProductID: p.ID,
			UserID:    actor.ID,
			UserName:  user.Name,
			Rating:    in.Rating,
			Comment:   in.Comment,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		avg, count, err := r.Reviews().AggregateByProductID(ctx, p.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Products().SetRating(ctx, p.ID, round2(avg), count); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = rv
		return nil
	})

	if err != nil {
		return model.Review{}, err
	}
	return out, nil
}
