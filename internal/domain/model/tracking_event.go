package model

import "time"

// Append-only fulfillment timeline. Rows are never updated or deleted;
// public order tracking reads exactly this table.
type TrackingEvent struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   int64     `gorm:"not null;index" json:"-"`
	Status    string    `gorm:"type:varchar(100);not null" json:"status"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"timestamp"`
}
