package orderValidator

import (
	"earnbox/middleware"

	"github.com/gofiber/fiber/v2"
)

// Buy validates a product purchase request
func Buy() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductID uint `json:"productId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProductID == 0 {
			errors["productId"] = "Product ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBuy", reqData)
		return c.Next()
	}
}
