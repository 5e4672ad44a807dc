package bankRoutes

import (
	bankController "earnbox/controllers/bank"
	"earnbox/middleware"
	bankValidator "earnbox/validators/bank"

	"github.com/gofiber/fiber/v2"
)

func SetupBankRoutes(app *fiber.App) {
	bankGroup := app.Group("/bank")

	bankGroup.Post("/", bankValidator.Upsert(), middleware.JWTMiddleware, bankController.UpsertBankDetails)
	bankGroup.Get("/", middleware.JWTMiddleware, bankController.GetBankDetails)
}
