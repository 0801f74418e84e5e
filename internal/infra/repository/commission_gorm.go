package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type CommissionGormRepository struct {
	db *gorm.DB
}

func NewCommissionGormRepository(db *gorm.DB) *CommissionGormRepository {
	return &CommissionGormRepository{db: db}
}

func (r *CommissionGormRepository) Create(ctx context.Context, c model.Commission) (model.Commission, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Commission{}, err
	}
	return c, nil
}

func (r *CommissionGormRepository) FindByID(ctx context.Context, id int64) (model.Commission, error) {
	var c model.Commission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Commission{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Commission{}, err
	}
	return c, nil
}

func (r *CommissionGormRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]model.Commission, error) {
	var commissions []model.Commission
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id desc").
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *CommissionGormRepository) ListAll(ctx context.Context) ([]model.Commission, error) {
	var commissions []model.Commission
	if err := r.db.WithContext(ctx).Order("id desc").Find(&commissions).Error; err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *CommissionGormRepository) UpdateStatusIf(ctx context.Context, id int64, from []model.CommissionStatus, to model.CommissionStatus, resolvedAt *time.Time) (bool, error) {
	values := map[string]interface{}{"status": to}
	if resolvedAt != nil {
		values["resolved_at"] = *resolvedAt
	}
	res := r.db.WithContext(ctx).Model(&model.Commission{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Only rows still strictly pending are touched, so a concurrent move to
// pending_verification always wins over the sweep.
func (r *CommissionGormRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Commission{}).
		Where("status = ? AND due_date < ?", model.CommissionStatusPending, now).
		Update("status", model.CommissionStatusOverdue)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *CommissionGormRepository) HasPaidByOrderID(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Commission{}).
		Where("order_id = ? AND status = ?", orderID, model.CommissionStatusPaid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommissionGormRepository) SumAmountByStatuses(ctx context.Context, sellerID *int64, statuses []model.CommissionStatus) (float64, error) {
	db := r.db.WithContext(ctx).Model(&model.Commission{}).
		Select("COALESCE(SUM(commission_amount), 0)").
		Where("status IN ?", statuses)
	if sellerID != nil {
		db = db.Where("seller_id = ?", *sellerID)
	}
	var sum float64
	if err := db.Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *CommissionGormRepository) Count(ctx context.Context, sellerID *int64) (int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Commission{})
	if sellerID != nil {
		db = db.Where("seller_id = ?", *sellerID)
	}
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

type CommissionPaymentGormRepository struct {
	db *gorm.DB
}

func NewCommissionPaymentGormRepository(db *gorm.DB) *CommissionPaymentGormRepository {
	return &CommissionPaymentGormRepository{db: db}
}

func (r *CommissionPaymentGormRepository) Create(ctx context.Context, p model.CommissionPayment) (model.CommissionPayment, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.CommissionPayment{}, err
	}
	return p, nil
}

func (r *CommissionPaymentGormRepository) FindByID(ctx context.Context, id int64) (model.CommissionPayment, error) {
	var p model.CommissionPayment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CommissionPayment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CommissionPayment{}, err
	}
	return p, nil
}

func (r *CommissionPaymentGormRepository) ListPendingReview(ctx context.Context) ([]model.CommissionPayment, error) {
	var payments []model.CommissionPayment
	err := r.db.WithContext(ctx).
		Where("status = ?", model.CommissionPaymentPendingReview).
		Order("id desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *CommissionPaymentGormRepository) UpdateStatusIf(ctx context.Context, id int64, from model.CommissionPaymentStatus, to model.CommissionPaymentStatus, resolvedBy int64, resolvedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.CommissionPayment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":      to,
			"resolved_by": resolvedBy,
			"resolved_at": resolvedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CommissionPaymentGormRepository) CountPendingReview(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.CommissionPayment{}).
		Where("status = ?", model.CommissionPaymentPendingReview).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
