package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rmirandadev06/dashboard-braseiro/internal/apperrors"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portsrepo "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/repositories"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
	"github.com/rmirandadev06/dashboard-braseiro/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: repo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies credentials. Unknown email and wrong password both
// surface as ErrUnauthorized so callers cannot probe for accounts.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// CreateUser registers a new account. New accounts always start with the
// "simples" role; promotion is a separate admin update.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Senha)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Nome,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleSimples,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicate
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID))
	return &user, nil
}

// EnsureAdminUser seeds the first administrator account on an empty user
// table. Registration is admin-only, so without this a fresh database would
// have no way to log in. The seed is skipped when any user already exists or
// when the credentials are not configured.
func (s *userService) EnsureAdminUser(ctx context.Context, nome, email, senha string) error {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing users")
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}
	if email == "" || senha == "" {
		s.LogInfo(ctx, "No users exist and no admin credentials configured, skipping seed")
		return nil
	}

	hash, err := utils.HashPassword(senha)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Name:         nome,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to seed admin user", slog.String("email", email))
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	s.LogInfo(ctx, "Seeded initial admin user", slog.String("new_user_id", admin.UserID))
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

// UpdateUser applies an admin edit of name, email and role.
func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	role, ok := domain.ParseUserRole(req.Role)
	if !ok {
		return nil, apperrors.ErrValidation
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = req.Nome
	user.Email = req.Email
	user.Role = role
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account. An admin deleting their own account is
// rejected so the system cannot lose its last administrator by accident.
func (s *userService) DeleteUser(ctx context.Context, userID string, requesterID string) error {
	if userID == requesterID {
		return apperrors.ErrValidation
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

// ResetPassword sets a new password without checking the old one.
func (s *userService) ResetPassword(ctx context.Context, userID string, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.userRepo.UpdatePassword(ctx, userID, hash)
}

// ChangePassword verifies the current password before setting a new one.
func (s *userService) ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrUnauthorized
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("target_user_id", userID))
	return nil
}
