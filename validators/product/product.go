package productValidator

import (
	"earnbox/middleware"

	"github.com/gofiber/fiber/v2"
)

// Create validates an admin product creation request
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string  `json:"name"`
			Description   string  `json:"description"`
			Image         string  `json:"image"`
			Price         float64 `json:"price"`
			PerDayEarning float64 `json:"perDayEarning"`
			ValidityDays  int     `json:"validityDays"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Product name is required!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.PerDayEarning <= 0 {
			errors["perDayEarning"] = "Per-day earning must be greater than 0!"
		}
		if reqData.ValidityDays <= 0 {
			errors["validityDays"] = "Validity days must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}

// Update validates an admin product edit request
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          *string  `json:"name"`
			Description   *string  `json:"description"`
			Image         *string  `json:"image"`
			Price         *float64 `json:"price"`
			PerDayEarning *float64 `json:"perDayEarning"`
			ValidityDays  *int     `json:"validityDays"`
			IsActive      *bool    `json:"isActive"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price != nil && *reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.PerDayEarning != nil && *reqData.PerDayEarning <= 0 {
			errors["perDayEarning"] = "Per-day earning must be greater than 0!"
		}
		if reqData.ValidityDays != nil && *reqData.ValidityDays <= 0 {
			errors["validityDays"] = "Validity days must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProductUpdate", reqData)
		return c.Next()
	}
}
