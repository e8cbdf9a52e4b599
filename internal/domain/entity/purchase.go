package entity

import (
	"fmt"
	"time"
)

// PurchaseStatus is the lifecycle state of a purchase record
type PurchaseStatus string

const (
	PurchaseCompleted PurchaseStatus = "completed"
)

// Purchase is the immutable record of a completed token purchase
type Purchase struct {
	ID        string
	UserID    string
	PackageID string
	Tokens    int64
	Price     float64 // major currency units
	Status    PurchaseStatus
	SessionID string
	CreatedAt time.Time
}

// TokenPackage is a purchasable bundle of tokens
type TokenPackage struct {
	ID     string
	Tokens int64
	Price  float64
}

// LineItemName is the product name shown on the checkout page
func (p TokenPackage) LineItemName() string {
	return LineItemName(p.Tokens)
}

// LineItemName formats the checkout product name for a token quantity
func LineItemName(tokens int64) string {
	return fmt.Sprintf("%d Marketing Hook Tokens", tokens)
}

// TokenPackages is the catalog offered on the purchase page
var TokenPackages = []TokenPackage{
	{ID: "basic", Tokens: 100, Price: 9.99},
	{ID: "standard", Tokens: 500, Price: 29.99},
	{ID: "premium", Tokens: 1000, Price: 49.99},
}

// FindTokenPackage looks a package up by id
func FindTokenPackage(id string) (TokenPackage, bool) {
	for _, p := range TokenPackages {
		if p.ID == id {
			return p, true
		}
	}
	return TokenPackage{}, false
}

// CheckoutRequest is a request to open a payment session for tokens
type CheckoutRequest struct {
	UserID    string
	PackageID string
	Tokens    int64
	Price     float64
}

// CheckoutSession is the payment processor's answer to a CheckoutRequest
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutCompletion is a verified "checkout completed" notification
type CheckoutCompletion struct {
	SessionID   string
	UserID      string
	PackageID   string
	Tokens      int64
	AmountTotal int64 // minor units
}

// FulfillmentResult reports what fulfilling a completion did
type FulfillmentResult struct {
	Purchase  *Purchase
	Balance   int64
	Duplicate bool
}
