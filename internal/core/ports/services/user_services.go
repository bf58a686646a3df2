package services

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	"github.com/rmirandadev06/dashboard-braseiro/internal/dto"
)

// UserSvcFacade defines the user management operations exposed to handlers.
type UserSvcFacade interface {
	// Authenticate verifies email+password credentials. It returns
	// apperrors.ErrUnauthorized for both unknown emails and wrong passwords
	// so callers cannot distinguish the two.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// EnsureAdminUser seeds the initial administrator account when the user
	// table is empty, so a fresh deployment has a login to start from. It is
	// a no-op once any user exists.
	EnsureAdminUser(ctx context.Context, nome, email, senha string) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user. Deleting the requester's own account is
	// rejected with apperrors.ErrValidation.
	DeleteUser(ctx context.Context, userID string, requesterID string) error

	// ResetPassword sets a new password without checking the old one
	// (admin action).
	ResetPassword(ctx context.Context, userID string, newPassword string) error

	// ChangePassword verifies the current password before setting a new one
	// (self-service action).
	ChangePassword(ctx context.Context, userID string, currentPassword, newPassword string) error
}
