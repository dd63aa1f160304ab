// file: internals/route/details/product_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exchangeController "klubku_backend/internals/features/products/exchange/controller"
	productController "klubku_backend/internals/features/products/product/controller"
)

func ProductRoutes(app *fiber.App, auth fiber.Handler, db *gorm.DB) {
	productCtrl := &productController.ProductController{DB: db}
	exchangeCtrl := &exchangeController.ExchangeController{DB: db}

	// Penukaran (butuh token)
	app.Post("/api/products/exchange", auth, exchangeCtrl.ExchangeProduct)
	app.Get("/api/products/exchanges/my", auth, exchangeCtrl.GetMyExchanges)

	// Publik: katalog
	app.Get("/api/products", productCtrl.GetProducts)
	app.Get("/api/products/:id", productCtrl.GetProduct)
}

func ProductAdminRoutes(admin fiber.Router, db *gorm.DB) {
	productCtrl := &productController.ProductController{DB: db}
	exchangeCtrl := &exchangeController.ExchangeController{DB: db}

	// bisa lihat produk nonaktif lewat ?status=
	admin.Get("/products", productCtrl.GetProducts)
	admin.Post("/products", productCtrl.CreateProduct)
	admin.Put("/products/:id", productCtrl.UpdateProduct)
	admin.Delete("/products/:id", productCtrl.DeleteProduct)
	admin.Get("/products/exchanges", exchangeCtrl.GetAllExchanges)
}
