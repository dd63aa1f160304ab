// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/constants"
	authMw "klubku_backend/internals/middlewares/auth"
	routeDetails "klubku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Middleware JWT dipasang per-route supaya endpoint publik
	// (/api/auth/*, list & detail katalog) tetap bisa diakses tanpa token.
	auth := authMw.AuthMiddleware()

	// ===================== PUBLIC + PRIVATE =====================

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(app, auth, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(app, auth, db)

	log.Println("[INFO] Mounting Activity routes...")
	routeDetails.ActivityRoutes(app, auth, db)

	log.Println("[INFO] Mounting Product routes...")
	routeDetails.ProductRoutes(app, auth, db)

	// ===================== ADMIN =====================
	// Group admin dibuat TERAKHIR: middleware group di Fiber cocok
	// berdasarkan prefix string, jadi kalau dibuat duluan dia ikut
	// menangkap /api/activities dan /api/auth/*.
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth,
		authMw.OnlyRoles(constants.RoleErrorAdmin("admin"), constants.AdminOnly...),
	)

	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.ActivityAdminRoutes(admin, db)
	routeDetails.ProductAdminRoutes(admin, db)
}
