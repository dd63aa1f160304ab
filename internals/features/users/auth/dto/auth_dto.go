// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	userDTO "klubku_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	UserName      string  `json:"user_name" validate:"required,min=3,max=50"`
	Email         string  `json:"email" validate:"required,email,max=255"`
	Password      string  `json:"password" validate:"required,min=8,max=72"`
	StudentID     string  `json:"student_id" validate:"required,min=3,max=50"`
	WalletAddress *string `json:"wallet_address" validate:"omitempty,max=100"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.StudentID = strings.TrimSpace(r.StudentID)
	if r.WalletAddress != nil {
		v := strings.TrimSpace(*r.WalletAddress)
		if v == "" {
			r.WalletAddress = nil
		} else {
			r.WalletAddress = &v
		}
	}
}

// LoginRequest menerima email / username / student_id lewat satu field identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	User        userDTO.UserResponse `json:"user"`
}
