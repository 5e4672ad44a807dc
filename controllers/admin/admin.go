package adminController

import (
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/middleware"
	"earnbox/models"
	"earnbox/utils"

	"github.com/gofiber/fiber/v2"
)

func requireAdmin(c *fiber.Ctx) (*models.User, bool) {
	userId := c.Locals("userId").(uint)

	var admin models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, "ADMIN").First(&admin).Error; err != nil {
		return nil, false
	}
	return &admin, true
}

// ListTransactions returns transactions for admin review, filterable by type
// and status (Admin only)
func ListTransactions(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type")
	status := c.Query("status", string(models.TransactionStatusPending))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("is_deleted = false")
	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Preload("User").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ApproveTransaction resolves a pending deposit or withdrawal (Admin only).
// A deposit approval credits the user inside the same atomic unit; a
// withdrawal approval is status-only since the debit happened at request
// time.
func ApproveTransaction(c *fiber.Ctx) error {
	admin, ok := requireAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedProcess").(*struct {
		TransactionID string `json:"transactionId"`
		Notes         string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := ledger.NewStore(database.Database.Db)
	txn, err := store.ApproveTransaction(reqData.TransactionID, admin.ID, reqData.Notes)
	if err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	notifyWithdrawalResolved(txn, true, reqData.Notes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction approved!", fiber.Map{
		"transactionId": txn.TransactionID,
		"type":          txn.Type,
		"amount":        txn.Amount,
		"status":        txn.Status,
		"processedBy":   admin.Name,
	})
}

// RejectTransaction rejects a pending transaction (Admin only). A rejected
// withdrawal re-credits the reserved amount inside the same atomic unit.
func RejectTransaction(c *fiber.Ctx) error {
	admin, ok := requireAdmin(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedProcess").(*struct {
		TransactionID string `json:"transactionId"`
		Notes         string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := ledger.NewStore(database.Database.Db)
	txn, err := store.RejectTransaction(reqData.TransactionID, admin.ID, reqData.Notes)
	if err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	notifyWithdrawalResolved(txn, false, reqData.Notes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transaction rejected!", fiber.Map{
		"transactionId": txn.TransactionID,
		"type":          txn.Type,
		"amount":        txn.Amount,
		"status":        txn.Status,
		"processedBy":   admin.Name,
	})
}

func notifyWithdrawalResolved(txn *models.Transaction, approved bool, notes string) {
	if txn.Type != models.TransactionTypeWithdrawal {
		return
	}

	var user models.User
	if err := database.Database.Db.Select("name, email").First(&user, txn.UserID).Error; err == nil && user.Email != "" {
		utils.SendWithdrawalResolvedEmail(user.Email, user.Name, txn.TransactionID, txn.Amount, approved, notes)
	}
}

// GetUserDetail returns a user with presentation-only derived referral fields
// (Admin only)
func GetUserDetail(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	targetUserId := c.QueryInt("userId", 0)
	if targetUserId == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", targetUserId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Referral earnings are derivable: one fixed bonus per referred user who
	// has placed a first order.
	var converted int64
	db.Model(&models.User{}).
		Where("referred_by = ? AND has_placed_first_order = true AND is_deleted = false", user.ReferralCode).
		Count(&converted)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched!", fiber.Map{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"mobile":              user.Mobile,
		"balance":             user.Balance,
		"referralCode":        user.ReferralCode,
		"referredBy":          user.ReferredBy,
		"hasPlacedFirstOrder": user.HasPlacedFirstOrder,
		"referralConversions": converted,
		"referralEarnings":    float64(converted) * ledger.CalculateReferralBonus(),
	})
}

// GetWalletStats returns platform-wide totals by type and status (Admin only)
func GetWalletStats(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	db := database.Database.Db

	type statRow struct {
		Type   models.TransactionType   `json:"type"`
		Status models.TransactionStatus `json:"status"`
		Count  int64                    `json:"count"`
		Total  float64                  `json:"total"`
	}

	var rows []statRow
	if err := db.Model(&models.Transaction{}).
		Select("type, status, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("is_deleted = false").
		Group("type, status").
		Scan(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	var totalBalance float64
	db.Model(&models.User{}).Where("is_deleted = false").
		Select("COALESCE(SUM(balance), 0)").Scan(&totalBalance)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet stats fetched!", fiber.Map{
		"byTypeAndStatus": rows,
		"totalBalance":    totalBalance,
	})
}
