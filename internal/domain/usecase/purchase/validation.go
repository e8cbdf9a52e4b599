package purchase

import (
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
)

// CheckoutValidator validates checkout requests and completion notifications
type CheckoutValidator struct{}

// NewCheckoutValidator creates a new CheckoutValidator
func NewCheckoutValidator() *CheckoutValidator {
	return &CheckoutValidator{}
}

// ValidateCheckout requires every field and, for catalog packages, the catalog's tokens and price
func (v *CheckoutValidator) ValidateCheckout(req entity.CheckoutRequest) error {
	var missing []string
	if strings.TrimSpace(req.UserID) == "" {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(req.PackageID) == "" {
		missing = append(missing, "packageId")
	}
	if req.Tokens <= 0 {
		missing = append(missing, "tokens")
	}
	if req.Price <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return errs.NewValidationError("missing or invalid checkout fields", missing...)
	}

	if pkg, ok := entity.FindTokenPackage(req.PackageID); ok {
		if pkg.Tokens != req.Tokens || !entity.PricesEqual(pkg.Price, req.Price) {
			return fmt.Errorf("%w: package %s is %d tokens for %.2f", errs.ErrUnknownPackage, pkg.ID, pkg.Tokens, pkg.Price)
		}
	}
	return nil
}

// ValidateCompletion checks the metadata carried by a completed checkout
func (v *CheckoutValidator) ValidateCompletion(c entity.CheckoutCompletion) error {
	var missing []string
	if strings.TrimSpace(c.SessionID) == "" {
		missing = append(missing, "sessionId")
	}
	if strings.TrimSpace(c.UserID) == "" {
		missing = append(missing, "userId")
	}
	if c.Tokens <= 0 {
		missing = append(missing, "tokens")
	}
	if c.AmountTotal < 0 {
		missing = append(missing, "amountTotal")
	}
	if len(missing) > 0 {
		return errs.NewValidationError("checkout completion is missing metadata", missing...)
	}
	return nil
}
