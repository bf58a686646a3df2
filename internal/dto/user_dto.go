package dto

import (
	"time"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
)

// CreateUserRequest carries the fields of the admin "registrar" action.
// New accounts are always created with the "simples" role.
type CreateUserRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

// UpdateUserRequest carries the fields an admin may change on a user.
type UpdateUserRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=admin simples"`
}

// AdminResetPasswordRequest carries an admin password reset.
type AdminResetPasswordRequest struct {
	NovaSenha string `json:"novaSenha" binding:"required,min=6"`
}

// ChangePasswordRequest carries a self-service password change.
type ChangePasswordRequest struct {
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required,min=6"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse converts a domain.User to its response representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		Nome:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponseList converts a slice of domain users.
func ToUserResponseList(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses
}
