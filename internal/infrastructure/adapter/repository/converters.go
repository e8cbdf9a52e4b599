package repository

import (
	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/model"
)

func userToModel(u *entity.UserAccount) *model.User {
	return &model.User{
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

func userToEntity(m *model.User) *entity.UserAccount {
	links := m.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	return &entity.UserAccount{
		ID:              m.ID,
		DisplayName:     m.DisplayName,
		Email:           m.Email,
		PhotoURL:        m.PhotoURL,
		Bio:             m.Bio,
		Location:        m.Location,
		Tokens:          m.Tokens,
		AccountType:     entity.AccountType(m.AccountType),
		MarketingOptIn:  m.MarketingOptIn,
		SocialLinks:     links,
		CreatedAt:       m.CreatedAt,
		LastLogin:       m.LastLogin,
		LastTokenUpdate: m.LastTokenUpdate,
		UpdatedAt:       m.UpdatedAt,
	}
}

func hookToModel(h *entity.GeneratedHook) *model.GeneratedHook {
	m := &model.GeneratedHook{
		ID:        h.ID,
		UserID:    h.UserID,
		Product:   h.Product,
		Audience:  h.Audience,
		Tone:      h.Tone,
		Platform:  h.Platform,
		Content:   h.Content,
		CreatedAt: h.CreatedAt,
	}
	if h.OriginalHookID != "" {
		original := h.OriginalHookID
		m.OriginalHookID = &original
	}
	return m
}

func hookToEntity(m *model.GeneratedHook) *entity.GeneratedHook {
	h := &entity.GeneratedHook{
		ID:        m.ID,
		UserID:    m.UserID,
		Product:   m.Product,
		Audience:  m.Audience,
		Tone:      m.Tone,
		Platform:  m.Platform,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.OriginalHookID != nil {
		h.OriginalHookID = *m.OriginalHookID
	}
	return h
}

func searchToModel(s *entity.SearchRecord) *model.UserSearch {
	return &model.UserSearch{
		ID:        s.ID,
		UserID:    s.UserID,
		Product:   s.Product,
		Audience:  s.Audience,
		Tone:      s.Tone,
		Platform:  s.Platform,
		CreatedAt: s.CreatedAt,
	}
}

func searchToEntity(m *model.UserSearch) *entity.SearchRecord {
	return &entity.SearchRecord{
		ID:        m.ID,
		UserID:    m.UserID,
		Product:   m.Product,
		Audience:  m.Audience,
		Tone:      m.Tone,
		Platform:  m.Platform,
		CreatedAt: m.CreatedAt,
	}
}

func purchaseToModel(p *entity.Purchase) *model.UserPurchase {
	return &model.UserPurchase{
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

func purchaseToEntity(m *model.UserPurchase) *entity.Purchase {
	return &entity.Purchase{
		ID:        m.ID,
		UserID:    m.UserID,
		PackageID: m.PackageID,
		Tokens:    m.Tokens,
		Price:     m.Price,
		Status:    entity.PurchaseStatus(m.Status),
		SessionID: m.SessionID,
		CreatedAt: m.CreatedAt,
	}
}
