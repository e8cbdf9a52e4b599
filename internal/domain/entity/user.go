package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
)

// AccountType distinguishes accounts that have never bought tokens from those that have
type AccountType string

const (
	AccountFree AccountType = "free"
	AccountPaid AccountType = "paid"
)

// DefaultSocialPlatforms are the social link slots every new account starts with
var DefaultSocialPlatforms = []string{"twitter", "linkedin", "website"}

// Identity is what the identity provider tells us about a signed-in user
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
	PhotoURL    string
}

// UserAccount is a user's profile together with their token balance
type UserAccount struct {
	ID              string
	DisplayName     string
	Email           string
	PhotoURL        string
	Bio             string
	Location        string
	Tokens          int64 // never negative
	AccountType     AccountType
	MarketingOptIn  bool
	SocialLinks     map[string]string
	CreatedAt       time.Time
	LastLogin       time.Time
	LastTokenUpdate *time.Time
	UpdatedAt       time.Time
}

// NewUserAccount creates the account a user gets on first sign-in
func NewUserAccount(identity Identity, timeProvider coreport.TimeProvider) (*UserAccount, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return nil, errs.NewValidationError("user id is required", "userId")
	}

	links := make(map[string]string, len(DefaultSocialPlatforms))
	for _, p := range DefaultSocialPlatforms {
		links[p] = ""
	}

	now := timeProvider.Now()
	return &UserAccount{
		ID:          identity.UserID,
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		PhotoURL:    identity.PhotoURL,
		Tokens:      StartingBalance,
		AccountType: AccountFree,
		SocialLinks: links,
		CreatedAt:   now,
		LastLogin:   now,
		UpdatedAt:   now,
	}, nil
}

// CanAfford reports whether the account balance covers cost
func (u *UserAccount) CanAfford(cost int64) bool {
	return HasSufficientBalance(u.Tokens, cost)
}

// RecordLogin refreshes the last login time and any identity fields that changed upstream
func (u *UserAccount) RecordLogin(identity Identity, timeProvider coreport.TimeProvider) {
	if identity.DisplayName != "" {
		u.DisplayName = identity.DisplayName
	}
	if identity.Email != "" {
		u.Email = identity.Email
	}
	if identity.PhotoURL != "" {
		u.PhotoURL = identity.PhotoURL
	}
	now := timeProvider.Now()
	u.LastLogin = now
	u.UpdatedAt = now
}

// ProfileUpdate carries the user-editable profile fields; nil means unchanged
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	Location    *string
	SocialLinks map[string]string
}

// ApplyProfile applies a profile edit
func (u *UserAccount) ApplyProfile(update ProfileUpdate, timeProvider coreport.TimeProvider) {
	if update.DisplayName != nil {
		u.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.Location != nil {
		u.Location = *update.Location
	}
	if len(update.SocialLinks) > 0 {
		if u.SocialLinks == nil {
			u.SocialLinks = map[string]string{}
		}
		for platform, url := range update.SocialLinks {
			u.SocialLinks[strings.ToLower(platform)] = strings.TrimSpace(url)
		}
	}
	u.UpdatedAt = timeProvider.Now()
}
