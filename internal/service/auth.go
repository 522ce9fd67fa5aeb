package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kaifmomin2004/EHR-Project/internal/apperrors"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// TokenResponse is returned by login and register. User never carries the
// password hash (excluded at the model level).
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        *models.User `json:"user"`
}

// AuthService authenticates credentials and registers new identities.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Register(ctx context.Context, email, password, fullName string, role models.Role) (*TokenResponse, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenService TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokenService TokenService) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login authenticates by email and password. Unknown email and wrong
// password return the same error so account existence never leaks.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueResponse(user)
}

// Register creates a new identity and issues a token exactly as login would.
func (s *authService) Register(ctx context.Context, email, password, fullName string, role models.Role) (*TokenResponse, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueResponse(user)
}

func (s *authService) issueResponse(user *models.User) (*TokenResponse, error) {
	token, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenService.Expiry().Seconds()),
		User:        user,
	}, nil
}
