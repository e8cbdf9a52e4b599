package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// IdentityVerifier validates session tokens issued by the identity provider
type IdentityVerifier interface {
	// Verify returns ErrUnauthorized for missing, expired or forged tokens
	Verify(ctx context.Context, token string) (entity.Identity, error)
}
