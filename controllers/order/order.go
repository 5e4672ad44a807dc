package orderController

import (
	"earnbox/database"
	"earnbox/ledger"
	"earnbox/middleware"
	"earnbox/models"

	"github.com/gofiber/fiber/v2"
)

// BuyProduct purchases an earning product. Debit, order creation and any
// first-order referral bonus happen in a single atomic unit inside the
// ledger.
func BuyProduct(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBuy").(*struct {
		ProductID uint `json:"productId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store := ledger.NewStore(database.Database.Db)
	order, err := store.CreateOrder(userId, reqData.ProductID)
	if err != nil {
		return middleware.LedgerErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order placed successfully!", fiber.Map{
		"orderId":       order.ID,
		"productId":     order.ProductID,
		"startDate":     order.StartDate,
		"endDate":       order.EndDate,
		"validity":      order.Validity,
		"perDayEarning": order.PerDayEarning,
		"status":        order.Status,
	})
}

// MyOrders lists the user's orders with presentation-only derived fields.
func MyOrders(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status") // ACTIVE, COMPLETED

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Order{}).Where("user_id = ? AND is_deleted = false", userId)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	type OrderResponse struct {
		models.Order
		ProductName string  `json:"productName"`
		TotalEarned float64 `json:"totalEarned"`
		DaysElapsed int     `json:"daysElapsed"`
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		// Derived, not stored: earnings to date are a pure function of the
		// countdown already persisted on the order. EndDate moves when the
		// order completes, so the stored initial duration is the anchor.
		elapsed := o.InitialValidity - o.Validity
		response = append(response, OrderResponse{
			Order:       o,
			ProductName: o.Product.Name,
			TotalEarned: float64(elapsed) * o.PerDayEarning,
			DaysElapsed: elapsed,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", fiber.Map{
		"orders": response,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
