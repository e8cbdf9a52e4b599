package dto

import (
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// CheckoutRequest represents the API request for opening a checkout session
type CheckoutRequest struct {
	UserID    string  `json:"userId"`
	PackageID string  `json:"packageId"`
	Tokens    int64   `json:"tokens"`
	Price     float64 `json:"price"`
}

// ToEntity converts the request body into a checkout request
func (r CheckoutRequest) ToEntity() entity.CheckoutRequest {
	return entity.CheckoutRequest{UserID: r.UserID, PackageID: r.PackageID, Tokens: r.Tokens, Price: r.Price}
}

type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

type PurchaseRecord struct {
	ID        string    `json:"id"`
	PackageID string    `json:"packageId"`
	Tokens    int64     `json:"tokens"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"timestamp"`
}

// PurchaseRecordsFrom converts stored purchases for the history endpoint
func PurchaseRecordsFrom(purchases []*entity.Purchase) []PurchaseRecord {
	out := make([]PurchaseRecord, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, PurchaseRecord{
			ID:        p.ID,
			PackageID: p.PackageID,
			Tokens:    p.Tokens,
			Price:     p.Price,
			Status:    string(p.Status),
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
