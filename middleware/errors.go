package middleware

import (
	"earnbox/ledger"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// LedgerErrorResponse maps ledger errors to transport status codes so the
// controllers stay thin.
func LedgerErrorResponse(c *fiber.Ctx, err error) error {
	var insufficient *ledger.InsufficientBalanceError

	switch {
	case errors.As(err, &insufficient):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", fiber.Map{
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
	case errors.Is(err, ledger.ErrUserNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	case errors.Is(err, ledger.ErrProductNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	case errors.Is(err, ledger.ErrProductInactive):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Product is no longer available!", nil)
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Transaction not found!", nil)
	case errors.Is(err, ledger.ErrOrderNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	case errors.Is(err, ledger.ErrAlreadyProcessed):
		return JsonResponse(c, fiber.StatusConflict, false, "Transaction already processed!", nil)
	case errors.Is(err, ledger.ErrGatewayBusy):
		return JsonResponse(c, fiber.StatusConflict, false, "Payment gateway busy, please try again shortly!", nil)
	case errors.Is(err, ledger.ErrBankDetailsMissing):
		return JsonResponse(c, fiber.StatusBadRequest, false, "Please add your bank details before requesting a withdrawal!", nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
