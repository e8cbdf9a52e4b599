package model

import (
	"time"
)

// UserPurchase represents a completed token purchase
type UserPurchase struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:128;index:idx_user_purchases_user_created,priority:1"`
	PackageID string    `gorm:"not null;size:64"`
	Tokens    int64     `gorm:"not null"`
	Price     float64   `gorm:"not null"`
	Status    string    `gorm:"not null;size:32"`
	SessionID string    `gorm:"not null;size:255;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null;index:idx_user_purchases_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for UserPurchase
func (UserPurchase) TableName() string {
	return "user_purchases"
}
