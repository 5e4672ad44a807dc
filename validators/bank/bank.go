package bankValidator

import (
	"earnbox/middleware"

	"github.com/gofiber/fiber/v2"
)

// Upsert validates bank details submission
func Upsert() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BankName    string `json:"bankName"`
			AccountNo   string `json:"accountNo"`
			HolderName  string `json:"holderName"`
			IFSCCode    string `json:"ifscCode"`
			BranchName  string `json:"branchName"`
			AccountType string `json:"accountType"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BankName == "" {
			errors["bankName"] = "Bank name is required!"
		}
		if reqData.AccountNo == "" {
			errors["accountNo"] = "Account number is required!"
		}
		if reqData.HolderName == "" {
			errors["holderName"] = "Account holder name is required!"
		}
		if len(reqData.IFSCCode) != 11 {
			errors["ifscCode"] = "Valid 11-character IFSC code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBank", reqData)
		return c.Next()
	}
}
