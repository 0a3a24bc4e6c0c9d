// goudace | 2026
// dto.go

package auth

import (
	"time"
)

type SignupRequest struct {
	Email           string `json:"email"            validate:"required,email,max=255"`
	Name            string `json:"name"             validate:"required,min=1,max=100"`
	Password        string `json:"password"         validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	Password        string `json:"password"         validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(r *UserRecord) UserResponse {
	return UserResponse{
		ID:          r.ID,
		Email:       r.Email,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
	}
}
