package walletController

import (
	"earnbox/config"
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/middleware"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RazorpayWebhook receives gateway payment notifications. The signature is
// verified over the raw request bytes; everything past a valid signature is
// acknowledged so the gateway's retries stop, whether or not a pending
// deposit matched.
func RazorpayWebhook(c *fiber.Ctx) error {
	signature := c.Get("X-Razorpay-Signature")
	rawBody := c.Body()

	store := ledger.NewStore(database.Database.Db)
	err := store.HandleWebhook(ledger.Gateway, rawBody, signature, config.AppConfig.RazorpayWebhookSecret)
	if errors.Is(err, ledger.ErrInvalidSignature) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid signature!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Webhook received!", nil)
}
