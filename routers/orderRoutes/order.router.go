package orderRoutes

import (
	orderController "earnbox/controllers/order"
	"earnbox/middleware"
	orderValidator "earnbox/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/orders")

	orderGroup.Post("/buy", orderValidator.Buy(), middleware.JWTMiddleware, orderController.BuyProduct)
	orderGroup.Get("/my", middleware.JWTMiddleware, orderController.MyOrders)
}
