package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaymentMethodGormRepository struct {
	db *gorm.DB
}

func NewPaymentMethodGormRepository(db *gorm.DB) *PaymentMethodGormRepository {
	return &PaymentMethodGormRepository{db: db}
}

func (r *PaymentMethodGormRepository) List(ctx context.Context, enabledOnly bool) ([]model.PaymentMethod, error) {
	db := r.db.WithContext(ctx)
	if enabledOnly {
		db = db.Where("enabled = ?", true)
	}
	var methods []model.PaymentMethod
	if err := db.Order("id").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *PaymentMethodGormRepository) FindByID(ctx context.Context, id int64) (model.PaymentMethod, error) {
	var m model.PaymentMethod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PaymentMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PaymentMethod{}, err
	}
	return m, nil
}

func (r *PaymentMethodGormRepository) Create(ctx context.Context, m model.PaymentMethod) (model.PaymentMethod, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.PaymentMethod{}, err
	}
	return m, nil
}

func (r *PaymentMethodGormRepository) Update(ctx context.Context, m model.PaymentMethod) error {
	res := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("id = ?", m.ID).
		Select("name", "account_name", "account_number", "instructions", "logo_url", "enabled").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodGormRepository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	res := r.db.WithContext(ctx).Model(&model.PaymentMethod{}).
		Where("id = ?", id).
		Update("enabled", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type SellerPaymentMethodGormRepository struct {
	db *gorm.DB
}

func NewSellerPaymentMethodGormRepository(db *gorm.DB) *SellerPaymentMethodGormRepository {
	return &SellerPaymentMethodGormRepository{db: db}
}

func (r *SellerPaymentMethodGormRepository) ListBySellerID(ctx context.Context, sellerID int64, enabledOnly bool) ([]model.SellerPaymentMethod, error) {
	db := r.db.WithContext(ctx).Where("seller_id = ?", sellerID)
	if enabledOnly {
		db = db.Where("enabled = ?", true)
	}
	var methods []model.SellerPaymentMethod
	if err := db.Order("id").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

func (r *SellerPaymentMethodGormRepository) FindByID(ctx context.Context, id int64) (model.SellerPaymentMethod, error) {
	var m model.SellerPaymentMethod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SellerPaymentMethod{}, repo.ErrNotFound
	}
	if err != nil {
		return model.SellerPaymentMethod{}, err
	}
	return m, nil
}

func (r *SellerPaymentMethodGormRepository) ExistsBySellerAndMethod(ctx context.Context, sellerID int64, methodID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SellerPaymentMethod{}).
		Where("seller_id = ? AND payment_method_id = ?", sellerID, methodID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SellerPaymentMethodGormRepository) Create(ctx context.Context, m model.SellerPaymentMethod) (model.SellerPaymentMethod, error) {
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return model.SellerPaymentMethod{}, err
	}
	return m, nil
}

func (r *SellerPaymentMethodGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SellerPaymentMethod{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type SettingGormRepository struct {
	db *gorm.DB
}

func NewSettingGormRepository(db *gorm.DB) *SettingGormRepository {
	return &SettingGormRepository{db: db}
}

func (r *SettingGormRepository) Get(ctx context.Context, key string) (model.Setting, error) {
	var s model.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Setting{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Setting{}, err
	}
	return s, nil
}

func (r *SettingGormRepository) Upsert(ctx context.Context, s model.Setting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&s).Error
}
