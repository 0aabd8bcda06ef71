package service

import (
	"context"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/repository"
)

// UserService handles portal account business logic.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByUsername retrieves a user by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// ListStudents retrieves all students in a department.
func (s *UserService) ListStudents(ctx context.Context, department string) ([]model.User, error) {
	return s.repo.ListByRoleAndDepartment(ctx, model.RoleStudent, department)
}

// Create inserts a new account with an already-hashed password.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.repo.Create(ctx, u)
}
