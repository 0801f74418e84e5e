package model

import "time"

// Single-row platform settings keyed by name. Currently only the admin's
// commission collection account lives here.
type Setting struct {
	Key             string    `gorm:"primaryKey;type:varchar(100)" json:"key"`
	PaymentMethodID int64     `json:"payment_method_id"`
	AccountName     string    `gorm:"type:varchar(255)" json:"account_name"`
	AccountNumber   string    `gorm:"type:varchar(100)" json:"account_number"`
	UpdatedAt       time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

const SettingCommissionPaymentMethod = "commission_payment_method"
