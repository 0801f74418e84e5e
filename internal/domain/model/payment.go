package model

import "time"

type PaymentClaimStatus string

const (
	ClaimStatusPendingVerification PaymentClaimStatus = "pending_verification"
	ClaimStatusCompleted           PaymentClaimStatus = "completed"
	ClaimStatusRejected            PaymentClaimStatus = "rejected"
)

// A buyer's assertion that an out-of-band transfer was made for an order.
// At most one claim per order may be pending or completed at a time.
type Payment struct {
	ID             int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64              `gorm:"not null;index" json:"order_id"`
	BuyerID        int64              `gorm:"not null;index" json:"buyer_id"`
	TransactionRef string             `gorm:"type:varchar(255);not null" json:"transaction_ref"`
	ReceiptImage   string             `gorm:"type:text" json:"receipt_image,omitempty"`
	Status         PaymentClaimStatus `gorm:"type:varchar(30);not null;index" json:"status"`
	ResolvedBy     *int64             `gorm:"index" json:"resolved_by,omitempty"`
	ResolvedAt     *time.Time         `json:"resolved_at,omitempty"`
	CreatedAt      time.Time          `gorm:"not null;autoCreateTime" json:"created_at"`
}
