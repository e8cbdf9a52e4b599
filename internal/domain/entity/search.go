package entity

import "time"

// SearchRecord logs the parameters of one generation request
type SearchRecord struct {
	ID        string
	UserID    string
	Product   string
	Audience  string
	Tone      string
	Platform  string
	CreatedAt time.Time
}

// NewSearchRecord builds the record for params
func NewSearchRecord(id, userID string, params HookParams, at time.Time) *SearchRecord {
	return &SearchRecord{
		ID:        id,
		UserID:    userID,
		Product:   params.Product,
		Audience:  params.Audience,
		Tone:      params.Tone,
		Platform:  params.Platform,
		CreatedAt: at,
	}
}
