// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "klubku_backend/internals/features/users/auth/controller"
	"klubku_backend/internals/middlewares"
)

// AuthRoutes: register & login publik (rate-limited), logout butuh token.
func AuthRoutes(app *fiber.App, auth fiber.Handler, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	app.Post("/api/auth/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	app.Post("/api/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)

	app.Post("/api/auth/logout", auth, ctrl.Logout)
}
