package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending             PaymentStatus = "pending"
	PaymentStatusPendingVerification PaymentStatus = "pending_verification"
	PaymentStatusCompleted           PaymentStatus = "completed"
	PaymentStatusRejected            PaymentStatus = "rejected"
)

type Order struct {
	ID                int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber       string        `gorm:"type:varchar(30);not null;uniqueIndex" json:"order_number"`
	BuyerID           int64         `gorm:"not null;index" json:"buyer_id"`
	TotalAmount       float64       `gorm:"not null" json:"total_amount"`
	ShippingAddress   string        `gorm:"type:varchar(255);not null" json:"shipping_address"`
	ShippingCity      string        `gorm:"type:varchar(100);not null" json:"shipping_city"`
	ShippingPhone     string        `gorm:"type:varchar(50);not null" json:"shipping_phone"`
	Notes             string        `gorm:"type:text" json:"notes,omitempty"`
	PaymentMethodID   int64         `gorm:"not null" json:"payment_method_id"`
	PaymentMethodName string        `gorm:"type:varchar(255)" json:"payment_method_name,omitempty"`
	PaymentStatus     PaymentStatus `gorm:"type:varchar(30);not null;index" json:"payment_status"`
	OrderStatus       OrderStatus   `gorm:"type:varchar(20);not null;index" json:"order_status"`
	CreatedAt         time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
