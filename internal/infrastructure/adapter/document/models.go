package document

import (
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

type userDoc struct {
	ID              string            `bson:"_id"`
	DisplayName     string            `bson:"display_name"`
	Email           string            `bson:"email"`
	PhotoURL        string            `bson:"photo_url"`
	Bio             string            `bson:"bio"`
	Location        string            `bson:"location"`
	Tokens          int64             `bson:"tokens"`
	AccountType     string            `bson:"account_type"`
	MarketingOptIn  bool              `bson:"marketing_opt_in"`
	SocialLinks     map[string]string `bson:"social_links"`
	CreatedAt       time.Time         `bson:"created_at"`
	LastLogin       time.Time         `bson:"last_login"`
	LastTokenUpdate *time.Time        `bson:"last_token_update,omitempty"`
	UpdatedAt       time.Time         `bson:"updated_at"`
}

type hookDoc struct {
	ID             string    `bson:"_id"`
	UserID         string    `bson:"user_id"`
	Product        string    `bson:"product"`
	Audience       string    `bson:"audience"`
	Tone           string    `bson:"tone"`
	Platform       string    `bson:"platform"`
	Content        string    `bson:"content"`
	OriginalHookID string    `bson:"original_hook_id,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

type searchDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Product   string    `bson:"product"`
	Audience  string    `bson:"audience"`
	Tone      string    `bson:"tone"`
	Platform  string    `bson:"platform"`
	CreatedAt time.Time `bson:"created_at"`
}

type purchaseDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	PackageID string    `bson:"package_id"`
	Tokens    int64     `bson:"tokens"`
	Price     float64   `bson:"price"`
	Status    string    `bson:"status"`
	SessionID string    `bson:"session_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func toUserDoc(u *entity.UserAccount) *userDoc {
	return &userDoc{
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
		UpdatedAt:       u.UpdatedAt,
	}
}

func fromUserDoc(d *userDoc) *entity.UserAccount {
	links := d.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return &entity.UserAccount{
		ID:              d.ID,
		DisplayName:     d.DisplayName,
		Email:           d.Email,
		PhotoURL:        d.PhotoURL,
		Bio:             d.Bio,
		Location:        d.Location,
		Tokens:          d.Tokens,
		AccountType:     entity.AccountType(d.AccountType),
		MarketingOptIn:  d.MarketingOptIn,
		SocialLinks:     links,
		CreatedAt:       d.CreatedAt,
		LastLogin:       d.LastLogin,
		LastTokenUpdate: d.LastTokenUpdate,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toHookDoc(h *entity.GeneratedHook) *hookDoc {
	return &hookDoc{
		ID:             h.ID,
		UserID:         h.UserID,
		Product:        h.Product,
		Audience:       h.Audience,
		Tone:           h.Tone,
		Platform:       h.Platform,
		Content:        h.Content,
		OriginalHookID: h.OriginalHookID,
		CreatedAt:      h.CreatedAt,
	}
}

func fromHookDoc(d *hookDoc) *entity.GeneratedHook {
	return &entity.GeneratedHook{
		ID:             d.ID,
		UserID:         d.UserID,
		Product:        d.Product,
		Audience:       d.Audience,
		Tone:           d.Tone,
		Platform:       d.Platform,
		Content:        d.Content,
		OriginalHookID: d.OriginalHookID,
		CreatedAt:      d.CreatedAt,
	}
}

func toSearchDoc(s *entity.SearchRecord) *searchDoc {
	return &searchDoc{
		ID:        s.ID,
		UserID:    s.UserID,
		Product:   s.Product,
		Audience:  s.Audience,
		Tone:      s.Tone,
		Platform:  s.Platform,
		CreatedAt: s.CreatedAt,
	}
}

func fromSearchDoc(d *searchDoc) *entity.SearchRecord {
	return &entity.SearchRecord{
		ID:        d.ID,
		UserID:    d.UserID,
		Product:   d.Product,
		Audience:  d.Audience,
		Tone:      d.Tone,
		Platform:  d.Platform,
		CreatedAt: d.CreatedAt,
	}
}

func toPurchaseDoc(p *entity.Purchase) *purchaseDoc {
	return &purchaseDoc{
		ID:        p.ID,
		UserID:    p.UserID,
		PackageID: p.PackageID,
		Tokens:    p.Tokens,
		Price:     p.Price,
		Status:    string(p.Status),
		SessionID: p.SessionID,
		CreatedAt: p.CreatedAt,
	}
}

func fromPurchaseDoc(d *purchaseDoc) *entity.Purchase {
	return &entity.Purchase{
		ID:        d.ID,
		UserID:    d.UserID,
		PackageID: d.PackageID,
		Tokens:    d.Tokens,
		Price:     d.Price,
		Status:    entity.PurchaseStatus(d.Status),
		SessionID: d.SessionID,
		CreatedAt: d.CreatedAt,
	}
}
