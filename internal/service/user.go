package service

import (
	"context"

	"github.com/kaifmomin2004/EHR-Project/internal/authz"
	"github.com/kaifmomin2004/EHR-Project/internal/models"
	"github.com/kaifmomin2004/EHR-Project/internal/repository"
)

// UserService exposes the guarded user-management operations.
type UserService interface {
	List(ctx context.Context, caller *models.User) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, caller *models.User) ([]models.User, error) {
	if err := authz.Authorize(caller, authz.ActionUserList); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}
