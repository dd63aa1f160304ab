// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"klubku_backend/internals/configs"
	userModel "klubku_backend/internals/features/users/user/model"
)

// GenerateToken membuat JWT HS256 untuk user yang berhasil login.
// Claims "user_id" dan "role" dibaca kembali oleh auth middleware.
func GenerateToken(user *userModel.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum dikonfigurasi")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(configs.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
