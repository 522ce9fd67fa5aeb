// Package service implements the authentication core: token issuance and
// verification, credential checks, and the guarded domain operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
)

// minSecretLength is the minimum HMAC secret size accepted at construction.
const minSecretLength = 32

// Claims represents the JWT claims carried by a bearer token. The subject
// is the user id; the role rides along so it can be logged without a
// store lookup, but authorization always uses the resolved identity.
type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	Issue(user *models.User) (string, error)
	Verify(ctx context.Context, tokenString string) (*models.User, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret   string
	expiry   time.Duration
	userRepo repository.UserRepository
}

// NewTokenService creates a new TokenService instance. Returns nil if the
// secret is shorter than 32 bytes.
func NewTokenService(secret string, expiry time.Duration, userRepo repository.UserRepository) TokenService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &tokenService{
		secret:   secret,
		expiry:   expiry,
		userRepo: userRepo,
	}
}

// Issue signs a token for the given identity. Stateless: nothing is
// persisted, the token is reconstructed and verified on each request.
func (s *tokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Verify validates signature and expiry, then resolves the subject against
// the credential store. A deleted account therefore fails verification even
// though individual tokens are never revoked.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrMalformedToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnknownSubject
		}
		return nil, fmt.Errorf("failed to resolve token subject: %w", err)
	}

	return user, nil
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return apperrors.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apperrors.ErrMalformedToken
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedToken, err)
	}
}
