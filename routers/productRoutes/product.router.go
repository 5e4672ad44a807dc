package productRoutes

import (
	productController "earnbox/controllers/product"
	"earnbox/middleware"
	productValidator "earnbox/validators/product"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App) {
	productGroup := app.Group("/products")

	// Public catalog
	productGroup.Get("/", middleware.JWTMiddleware, productController.ListProducts)
	productGroup.Get("/:id", middleware.JWTMiddleware, productController.GetProduct)

	// Admin catalog management
	adminGroup := productGroup.Group("/admin")
	adminGroup.Post("/", productValidator.Create(), middleware.JWTMiddleware, productController.CreateProduct)
	adminGroup.Put("/:id", productValidator.Update(), middleware.JWTMiddleware, productController.UpdateProduct)
	adminGroup.Delete("/:id", middleware.JWTMiddleware, productController.DeleteProduct)
}
