package adminValidator

import (
	"earnbox/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProcessTransaction validates an approve/reject request
func ProcessTransaction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TransactionID string `json:"transactionId"`
			Notes         string `json:"notes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TransactionID == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProcess", reqData)
		return c.Next()
	}
}
