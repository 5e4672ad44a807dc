package walletValidator

import (
	"earnbox/config"
	"earnbox/middleware"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Deposit validates a deposit initiation request
func Deposit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount        float64 `json:"amount"`
			PaymentMethod string  `json:"paymentMethod"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount < config.AppConfig.MinDeposit {
			errors["amount"] = fmt.Sprintf("Minimum deposit amount is %.0f!", config.AppConfig.MinDeposit)
		}
		if reqData.PaymentMethod == "" {
			errors["paymentMethod"] = "Payment method is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDeposit", reqData)
		return c.Next()
	}
}

// Withdraw validates a withdrawal request
func Withdraw() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount < config.AppConfig.MinWithdrawal {
			errors["amount"] = fmt.Sprintf("Minimum withdrawal amount is %.0f!", config.AppConfig.MinWithdrawal)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdraw", reqData)
		return c.Next()
	}
}

// UTR validates a manual deposit proof submission
func UTR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TransactionID string `json:"transactionId"`
			UTR           string `json:"utr"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TransactionID == "" {
			errors["transactionId"] = "Transaction ID is required!"
		}
		if len(reqData.UTR) < 12 {
			errors["utr"] = "Valid UTR number is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUTR", reqData)
		return c.Next()
	}
}
