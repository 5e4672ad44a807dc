package adminRoutes

import (
	adminController "earnbox/controllers/admin"
	"earnbox/middleware"
	adminValidator "earnbox/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/transactions", middleware.JWTMiddleware, adminController.ListTransactions)
	adminGroup.Post("/transactions/approve", adminValidator.ProcessTransaction(), middleware.JWTMiddleware, adminController.ApproveTransaction)
	adminGroup.Post("/transactions/reject", adminValidator.ProcessTransaction(), middleware.JWTMiddleware, adminController.RejectTransaction)
	adminGroup.Get("/user", middleware.JWTMiddleware, adminController.GetUserDetail)
	adminGroup.Get("/stats", middleware.JWTMiddleware, adminController.GetWalletStats)
}
