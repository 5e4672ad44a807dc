package walletController

import (
	"earnbox/config"
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/middleware"
	"earnbox/models"

	"github.com/gofiber/fiber/v2"
)

// GetWalletBalance returns user's current wallet balance
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"balance":  user.Balance,
		"currency": "INR",
	})
}

// InitiateDeposit opens a deposit attempt: it acquires the single gateway
// lease and records a pending transaction carrying the lease reference. The
// webhook reconciler (or an admin, via UTR proof) resolves it later.
func InitiateDeposit(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedDeposit").(*struct {
		Amount        float64 `json:"amount"`
		PaymentMethod string  `json:"paymentMethod"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	leaseID, err := ledger.Gateway.Acquire(reqData.Amount)
	if err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	store := ledger.NewStore(database.Database.Db)
	txn, err := store.RequestDeposit(userId, reqData.Amount, reqData.PaymentMethod, leaseID)
	if err != nil {
		// Free the slot; the deposit never got off the ground.
		ledger.Gateway.Release(leaseID)
		return middleware.LedgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Deposit initiated! Complete the payment on the QR.", fiber.Map{
		"transactionId":  txn.TransactionID,
		"amount":         txn.Amount,
		"leaseExpiryMin": config.AppConfig.GatewayLeaseTimeoutMin,
	})
}

// SubmitUTR attaches a bank reference number to a pending deposit as manual
// proof when the gateway callback never arrived.
func SubmitUTR(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedUTR").(*struct {
		TransactionID string `json:"transactionId"`
		UTR           string `json:"utr"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := ledger.NewStore(database.Database.Db)
	if err := store.SubmitUTR(userId, reqData.TransactionID, reqData.UTR); err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "UTR submitted! Our team will verify it shortly.", nil)
}

// RequestWithdrawal reserves the amount immediately and queues the request
// for admin review.
func RequestWithdrawal(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedWithdraw").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := ledger.NewStore(database.Database.Db)
	txn, err := store.RequestWithdrawal(userId, reqData.Amount)
	if err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal requested! Amount reserved from your balance.", fiber.Map{
		"transactionId": txn.TransactionID,
		"amount":        txn.Amount,
		"status":        txn.Status,
	})
}

// GetWalletHistory returns user's transaction history
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	// Parse query params
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	txnType := c.Query("type") // DEPOSIT, WITHDRAWAL

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Transaction{}).Where("user_id = ? AND is_deleted = false", userId)

	if txnType != "" {
		query = query.Where("type = ?", txnType)
	}

	var total int64
	query.Count(&total)

	var transactions []models.Transaction
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
