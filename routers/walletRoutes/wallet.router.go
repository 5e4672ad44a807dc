package walletRoutes

import (
	walletController "earnbox/controllers/wallet"
	"earnbox/middleware"
	walletValidator "earnbox/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	// User routes
	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetWalletBalance)
	walletGroup.Post("/deposit", walletValidator.Deposit(), middleware.JWTMiddleware, walletController.InitiateDeposit)
	walletGroup.Post("/deposit/utr", walletValidator.UTR(), middleware.JWTMiddleware, walletController.SubmitUTR)
	walletGroup.Post("/withdraw", walletValidator.Withdraw(), middleware.JWTMiddleware, walletController.RequestWithdrawal)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletController.GetWalletHistory)

	// Gateway callback - raw body, signature-verified, no JWT
	walletGroup.Post("/webhook/razorpay", walletController.RazorpayWebhook)
}
