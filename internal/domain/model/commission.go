package model

import "time"

type CommissionStatus string

const (
	CommissionStatusPending             CommissionStatus = "pending"
	CommissionStatusPendingVerification CommissionStatus = "pending_verification"
	CommissionStatusPaid                CommissionStatus = "paid"
	CommissionStatusOverdue             CommissionStatus = "overdue"
)

// Platform fee owed by a seller for one order. Created only as a side effect
// of payment confirmation, one row per (order, seller). Amount and rate are
// fixed at creation and never recalculated.
type Commission struct {
	ID               int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID          int64            `gorm:"not null;index:idx_order_seller,unique" json:"order_id"`
	OrderNumber      string           `gorm:"type:varchar(30);not null" json:"order_number"`
	SellerID         int64            `gorm:"not null;index:idx_order_seller,unique;index" json:"seller_id"`
	SaleAmount       float64          `gorm:"not null" json:"sale_amount"`
	CommissionAmount float64          `gorm:"not null" json:"commission_amount"`
	CommissionRate   float64          `gorm:"not null" json:"commission_rate"`
	Status           CommissionStatus `gorm:"type:varchar(30);not null;index" json:"status"`
	DueDate          time.Time        `gorm:"not null;index" json:"due_date"`
	ResolvedAt       *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt        time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
}

type CommissionPaymentStatus string

const (
	CommissionPaymentPendingReview CommissionPaymentStatus = "pending_review"
	CommissionPaymentConfirmed     CommissionPaymentStatus = "confirmed"
	CommissionPaymentRejected      CommissionPaymentStatus = "rejected"
)

// A seller's settlement submission for one commission.
type CommissionPayment struct {
	ID             int64                   `gorm:"primaryKey;autoIncrement" json:"id"`
	CommissionID   int64                   `gorm:"not null;index" json:"commission_id"`
	SellerID       int64                   `gorm:"not null;index" json:"seller_id"`
	Amount         float64                 `gorm:"not null" json:"amount"`
	TransactionRef string                  `gorm:"type:varchar(255);not null" json:"transaction_ref"`
	ReceiptImage   string                  `gorm:"type:text" json:"receipt_image,omitempty"`
	Status         CommissionPaymentStatus `gorm:"type:varchar(30);not null;index" json:"status"`
	ResolvedBy     *int64                  `json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time              `json:"resolved_at,omitempty"`
	CreatedAt      time.Time               `gorm:"not null;autoCreateTime" json:"created_at"`
}
