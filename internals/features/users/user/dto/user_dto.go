// internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pointsModel "klubku_backend/internals/features/points/points_history/model"
	userModel "klubku_backend/internals/features/users/user/model"
)

// UserResponse adalah bentuk aman UserModel untuk klien (tanpa password).
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name"`
	Email         string    `json:"email"`
	StudentID     string    `json:"student_id"`
	WalletAddress *string   `json:"wallet_address,omitempty"`
	Role          string    `json:"role"`
	Points        int       `json:"points"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromUserModel(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:            u.ID,
		UserName:      u.UserName,
		Email:         u.Email,
		StudentID:     u.StudentID,
		WalletAddress: u.WalletAddress,
		Role:          u.Role,
		Points:        u.Points,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
	}
}

// UpdateProfileRequest: field yang boleh diubah sendiri oleh user.
// Saldo poin & role sengaja tidak ada di sini.
type UpdateProfileRequest struct {
	UserName      *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	WalletAddress *string `json:"wallet_address" validate:"omitempty,max=100"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.WalletAddress != nil {
		v := strings.TrimSpace(*r.WalletAddress)
		r.WalletAddress = &v
	}
}

func (r *UpdateProfileRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.UserName != nil && *r.UserName != "" {
		updates["user_name"] = *r.UserName
	}
	if r.WalletAddress != nil {
		if *r.WalletAddress == "" {
			updates["wallet_address"] = nil
		} else {
			updates["wallet_address"] = *r.WalletAddress
		}
	}
	return updates
}

// MyPointsResponse: saldo berjalan milik user dari token, plus
// potongan riwayat terakhir supaya UI tidak perlu dua request.
type MyPointsResponse struct {
	UserID        uuid.UUID                        `json:"user_id"`
	Points        int                              `json:"points"`
	RecentHistory []pointsModel.PointsHistoryModel `json:"recent_history"`
}
