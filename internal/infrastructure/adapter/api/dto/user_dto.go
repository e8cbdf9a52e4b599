package dto

import (
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// UserResponse represents a user's profile and balance
type UserResponse struct {
	ID              string            `json:"uid"`
	DisplayName     string            `json:"displayName"`
	Email           string            `json:"email"`
	PhotoURL        string            `json:"photoURL"`
	Bio             string            `json:"bio"`
	Location        string            `json:"location"`
	Tokens          int64             `json:"tokens"`
	AccountType     string            `json:"accountType"`
	MarketingOptIn  bool              `json:"marketingOptIn"`
	SocialLinks     map[string]string `json:"socialLinks"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastLogin       time.Time         `json:"lastLogin"`
	LastTokenUpdate *time.Time        `json:"lastTokenUpdate,omitempty"`
}

// UserResponseFrom converts an account into its response body
func UserResponseFrom(u *entity.UserAccount) UserResponse {
	return UserResponse{
		ID:              u.ID,
		DisplayName:     u.DisplayName,
		Email:           u.Email,
		PhotoURL:        u.PhotoURL,
		Bio:             u.Bio,
		Location:        u.Location,
		Tokens:          u.Tokens,
		AccountType:     string(u.AccountType),
		MarketingOptIn:  u.MarketingOptIn,
		SocialLinks:     u.SocialLinks,
		CreatedAt:       u.CreatedAt,
		LastLogin:       u.LastLogin,
		LastTokenUpdate: u.LastTokenUpdate,
	}
}

// SessionResponse answers a sign-in
type SessionResponse struct {
	User    UserResponse `json:"user"`
	Created bool         `json:"created"`
}

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID string `json:"userId"`
	Tokens int64  `json:"tokens"`
}

// ProfileRequest carries a profile edit; omitted fields stay unchanged
type ProfileRequest struct {
	DisplayName *string           `json:"displayName"`
	Bio         *string           `json:"bio"`
	Location    *string           `json:"location"`
	SocialLinks map[string]string `json:"socialLinks"`
}

// ToEntity converts the request body into a partial profile update
func (r ProfileRequest) ToEntity() entity.ProfileUpdate {
	return entity.ProfileUpdate{
		DisplayName: r.DisplayName,
		Bio:         r.Bio,
		Location:    r.Location,
		SocialLinks: r.SocialLinks,
	}
}

type PreferencesRequest struct {
	MarketingOptIn *bool `json:"marketingOptIn" binding:"required"`
}
