package model

import "time"

type PaymentMethodType string

const (
	MethodTypeMobileMoney PaymentMethodType = "mobile_money"
	MethodTypeBank        PaymentMethodType = "bank"
	MethodTypeEwallet     PaymentMethodType = "ewallet"
)

// Platform-level payment method registered by the admin. Sellers pick from
// the enabled subset to register their own receiving accounts.
type PaymentMethod struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string            `gorm:"type:varchar(255);not null" json:"name"`
	Type          PaymentMethodType `gorm:"type:varchar(30);not null" json:"type"`
	AccountName   string            `gorm:"type:varchar(255);not null" json:"account_name"`
	AccountNumber string            `gorm:"type:varchar(100);not null" json:"account_number"`
	Instructions  string            `gorm:"type:text" json:"instructions,omitempty"`
	LogoURL       string            `gorm:"type:text" json:"logo_url,omitempty"`
	Enabled       bool              `gorm:"not null;default:true" json:"enabled"`
	CreatedAt     time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
}

// A seller's receiving account under a platform payment method. Buyers pay
// this account during checkout.
type SellerPaymentMethod struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID        int64     `gorm:"not null;index:idx_seller_method,unique" json:"seller_id"`
	PaymentMethodID int64     `gorm:"not null;index:idx_seller_method,unique" json:"payment_method_id"`
	AccountName     string    `gorm:"type:varchar(255);not null" json:"account_name"`
	AccountNumber   string    `gorm:"type:varchar(100);not null" json:"account_number"`
	Enabled         bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
