package bankController

import (
	"earnbox/database"
	"earnbox/middleware"
	"earnbox/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpsertBankDetails creates or updates the user's payout account. A complete
// record is required before withdrawals are accepted.
func UpsertBankDetails(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBank").(*struct {
		BankName    string `json:"bankName"`
		AccountNo   string `json:"accountNo"`
		HolderName  string `json:"holderName"`
		IFSCCode    string `json:"ifscCode"`
		BranchName  string `json:"branchName"`
		AccountType string `json:"accountType"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var bank models.BankDetails
	err := db.Where("user_id = ? AND is_deleted = false", userId).First(&bank).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save bank details!", nil)
	}
	exists := err == nil

	bank.UserID = userId
	bank.BankName = reqData.BankName
	bank.AccountNo = reqData.AccountNo
	bank.HolderName = reqData.HolderName
	bank.IFSCCode = reqData.IFSCCode
	bank.BranchName = reqData.BranchName
	if reqData.AccountType != "" {
		bank.AccountType = reqData.AccountType
	}
	// Any edit re-enters the review queue.
	bank.IsVerified = false
	bank.VerifiedAt = nil

	if exists {
		err = db.Save(&bank).Error
	} else {
		err = db.Create(&bank).Error
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save bank details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank details saved!", bank)
}

// GetBankDetails returns the user's payout account
func GetBankDetails(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var bank models.BankDetails
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = false", userId).First(&bank).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bank details not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bank details fetched!", bank)
}
