package model

import (
	"time"
)

// GeneratedHook represents one logged hook variant
type GeneratedHook struct {
	ID             string    `gorm:"primaryKey;size:36"`
	UserID         string    `gorm:"not null;size:128;index:idx_generated_hooks_user_created,priority:1"`
	Product        string    `gorm:"not null;type:text"`
	Audience       string    `gorm:"not null;type:text"`
	Tone           string    `gorm:"not null;size:255"`
	Platform       string    `gorm:"not null;size:255"`
	Content        string    `gorm:"not null;type:text"`
	OriginalHookID *string   `gorm:"size:36;index"`
	CreatedAt      time.Time `gorm:"not null;index:idx_generated_hooks_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for GeneratedHook
func (GeneratedHook) TableName() string {
	return "generated_hooks"
}

// UserSearch represents one logged generation request
type UserSearch struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;size:128;index:idx_user_searches_user_created,priority:1"`
	Product   string    `gorm:"not null;type:text"`
	Audience  string    `gorm:"not null;type:text"`
	Tone      string    `gorm:"not null;size:255"`
	Platform  string    `gorm:"not null;size:255"`
	CreatedAt time.Time `gorm:"not null;index:idx_user_searches_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for UserSearch
func (UserSearch) TableName() string {
	return "user_searches"
}
