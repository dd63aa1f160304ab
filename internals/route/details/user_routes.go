// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointsController "klubku_backend/internals/features/points/points_history/controller"
	userController "klubku_backend/internals/features/users/user/controller"
)

func UserRoutes(app *fiber.App, auth fiber.Handler, db *gorm.DB) {
	userCtrl := &userController.UserController{DB: db}
	pointsCtrl := &pointsController.PointsHistoryController{DB: db}

	// Profil & saldo milik sendiri
	app.Get("/api/users/me", auth, userCtrl.GetMe)
	app.Put("/api/users/me", auth, userCtrl.UpdateMe)
	app.Get("/api/users/me/points", auth, userCtrl.GetMyPoints)

	// Riwayat poin
	app.Get("/api/points/history/my", auth, pointsCtrl.GetMyHistory)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userCtrl := &userController.UserController{DB: db}
	pointsCtrl := &pointsController.PointsHistoryController{DB: db}

	admin.Get("/users", userCtrl.GetUsers)
	admin.Get("/points/history", pointsCtrl.GetAllHistory)
}
