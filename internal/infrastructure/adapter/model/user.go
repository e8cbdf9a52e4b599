package model

import (
	"time"
)

// User represents the database model for user accounts
type User struct {
	ID              string            `gorm:"primaryKey;size:128"`
	DisplayName     string            `gorm:"size:255"`
	Email           string            `gorm:"size:320;index"`
	PhotoURL        string            `gorm:"type:text"`
	Bio             string            `gorm:"type:text"`
	Location        string            `gorm:"size:255"`
	Tokens          int64             `gorm:"not null;check:chk_users_tokens_non_negative,tokens >= 0"`
	AccountType     string            `gorm:"not null;size:16"`
	MarketingOptIn  bool              `gorm:"not null"`
	SocialLinks     map[string]string `gorm:"serializer:json;type:jsonb"`
	CreatedAt       time.Time         `gorm:"not null"`
	LastLogin       time.Time         `gorm:"not null"`
	LastTokenUpdate *time.Time
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
