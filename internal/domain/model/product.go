package model

import (
	"time"

	"gorm.io/gorm"
)

type ProductCondition string

const (
	ConditionNew         ProductCondition = "new"
	ConditionUsed        ProductCondition = "used"
	ConditionRefurbished ProductCondition = "refurbished"
)

type Product struct {
	ID             int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	SellerID       int64            `gorm:"not null;index" json:"seller_id"`
	Name           string           `gorm:"type:varchar(255);not null" json:"name"`
	Description    string           `gorm:"type:text" json:"description"`
	Price          float64          `gorm:"not null" json:"price"`
	Stock          int64            `gorm:"not null" json:"stock"`
	Condition      ProductCondition `gorm:"type:varchar(20);not null" json:"condition"`
	Brand          string           `gorm:"type:varchar(255)" json:"brand"`
	CategoryID     int64            `gorm:"not null;index" json:"category_id"`
	Images         []string         `gorm:"serializer:json" json:"images"`
	CompatibleCars []string         `gorm:"serializer:json" json:"compatible_cars"`
	AvgRating      float64          `gorm:"not null;default:0" json:"avg_rating"`
	ReviewCount    int64            `gorm:"not null;default:0" json:"review_count"`
	CreatedAt      time.Time        `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
