package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse carries the issued token plus the public user view.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}
