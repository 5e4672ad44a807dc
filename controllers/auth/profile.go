package authController

import (
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/middleware"
	"earnbox/models"

	"github.com/gofiber/fiber/v2"
)

// Me returns the authenticated user's profile. The referral link and earnings
// summary are derived at this boundary, never stored.
func Me(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var referred, converted int64
	db.Model(&models.User{}).Where("referred_by = ? AND is_deleted = false", user.ReferralCode).Count(&referred)
	db.Model(&models.User{}).
		Where("referred_by = ? AND has_placed_first_order = true AND is_deleted = false", user.ReferralCode).
		Count(&converted)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", fiber.Map{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"mobile":              user.Mobile,
		"role":                user.Role,
		"balance":             user.Balance,
		"referralCode":        user.ReferralCode,
		"referralLink":        "https://earnbox.app/signup?ref=" + user.ReferralCode,
		"referredUsers":       referred,
		"referralEarnings":    float64(converted) * ledger.CalculateReferralBonus(),
		"hasPlacedFirstOrder": user.HasPlacedFirstOrder,
	})
}
