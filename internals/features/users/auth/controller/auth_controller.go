// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"klubku_backend/internals/configs"
	authDTO "klubku_backend/internals/features/users/auth/dto"
	authService "klubku_backend/internals/features/users/auth/service"
	userDTO "klubku_backend/internals/features/users/user/dto"
	userModel "klubku_backend/internals/features/users/user/model"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* =========================================================
   REGISTER
   POST /register
   ========================================================= */
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user := userModel.UserModel{
		UserName:      req.UserName,
		Email:         req.Email,
		Password:      hash,
		StudentID:     req.StudentID,
		WalletAddress: req.WalletAddress,
		Role:          "user",
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict,
				"Username, email, student ID, atau wallet sudah terdaftar")
		}
		log.Printf("[AUTH ERROR] register: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromUserModel(&user))
}

/* =========================================================
   LOGIN
   POST /login

   Identifier boleh email, username, atau student_id.
   Token juga dikirim sebagai cookie access_token (HttpOnly).
   ========================================================= */
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	err := h.DB.
		Where("email = ? OR user_name = ? OR student_id = ?",
			req.Identifier, req.Identifier, req.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Identifier atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Akun sedang nonaktif")
	}
	if !authService.CheckPasswordHash(req.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Identifier atau password salah")
	}

	token, err := authService.GenerateToken(&user)
	if err != nil {
		log.Printf("[AUTH ERROR] generate token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(configs.JWTExpiry),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		AccessToken: token,
		User:        userDTO.FromUserModel(&user),
	})
}

/* =========================================================
   LOGOUT
   POST /api/logout
   ========================================================= */
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}
