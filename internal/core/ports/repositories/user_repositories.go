package repositories

import (
	"context"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	UpdatePassword(ctx context.Context, userID string, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error
}
