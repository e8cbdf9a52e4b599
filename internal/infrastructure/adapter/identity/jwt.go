package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
)

// Claims carries the identity fields inside a session token; the subject is the user id
type Claims struct {
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier validates HS256 session tokens and, for development, issues them
type JWTVerifier struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	parser       *jwt.Parser
}

func NewJWTVerifier(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) *JWTVerifier {
	return &JWTVerifier{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}
}

var _ gateway.IdentityVerifier = (*JWTVerifier)(nil)

// Verify parses token and returns the identity it carries
func (v *JWTVerifier) Verify(_ context.Context, token string) (entity.Identity, error) {
	if token == "" {
		return entity.Identity{}, errs.ErrUnauthorized
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return entity.Identity{}, fmt.Errorf("%w: token has no subject", errs.ErrUnauthorized)
	}

	return entity.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}, nil
}

// IssueToken signs a session token for identity
func (v *JWTVerifier) IssueToken(identity entity.Identity) (string, error) {
	if identity.UserID == "" {
		return "", errors.New("identity has no user id")
	}

	now := v.timeProvider.Now()
	claims := Claims{
		Email:   identity.Email,
		Name:    identity.DisplayName,
		Picture: identity.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
