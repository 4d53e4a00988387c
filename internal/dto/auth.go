package dto

import (
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// GoogleExchangeCodeRequest is the body of POST /auth/google/exchange-code.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenPairResponse carries a fresh access/refresh token pair.
type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterResponse is returned with 201 on successful registration.
type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
}

// UserResponse is the public profile of an account.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Credits int    `json:"credits"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:      user.UserID,
		Email:   user.Email,
		Credits: user.Credits,
	}
}
