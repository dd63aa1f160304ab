package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klubku_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   c.Locals("user_id"),
			"user_role": c.Locals("user_role"),
		})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	configs.JWTSecret = "secret-untuk-test"

	validClaims := jwt.MapClaims{
		"user_id": "6f1c1e66-3a88-4f13-9a41-02f3a1de6fbb",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	t.Run("token valid lewat header", func(t *testing.T) {
		app := newAuthTestApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, configs.JWTSecret, validClaims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("token valid lewat cookie", func(t *testing.T) {
		app := newAuthTestApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Cookie", "access_token="+signToken(t, configs.JWTSecret, validClaims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("tanpa token", func(t *testing.T) {
		app := newAuthTestApp()
		req := httptest.NewRequest("GET", "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("format header salah", func(t *testing.T) {
		app := newAuthTestApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token expired", func(t *testing.T) {
		app := newAuthTestApp()
		expired := jwt.MapClaims{
			"user_id": validClaims["user_id"],
			"role":    "user",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, configs.JWTSecret, expired))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("signature salah", func(t *testing.T) {
		app := newAuthTestApp()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "secret-lain", validClaims))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("tanpa user_id ditolak", func(t *testing.T) {
		app := newAuthTestApp()
		noUser := jwt.MapClaims{
			"role": "user",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, configs.JWTSecret, noUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOnlyRoles(t *testing.T) {
	configs.JWTSecret = "secret-untuk-test"

	newApp := func() *fiber.App {
		app := fiber.New()
		app.Get("/admin-only",
			AuthMiddleware(),
			OnlyRoles("khusus admin", "admin"),
			func(c *fiber.Ctx) error { return c.SendString("ok") },
		)
		return app
	}

	mintFor := func(t *testing.T, role string) string {
		return signToken(t, configs.JWTSecret, jwt.MapClaims{
			"user_id": "6f1c1e66-3a88-4f13-9a41-02f3a1de6fbb",
			"role":    role,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
	}

	t.Run("admin lolos", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+mintFor(t, "admin"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("user biasa ditolak", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+mintFor(t, "user"))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
