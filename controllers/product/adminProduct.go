package productController

import (
	"earnbox/database"
	"earnbox/middleware"
	"earnbox/models"

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

// CreateProduct creates a new catalog entry (Admin only)
func CreateProduct(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedProduct").(*struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Image         string  `json:"image"`
		Price         float64 `json:"price"`
		PerDayEarning float64 `json:"perDayEarning"`
		ValidityDays  int     `json:"validityDays"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	product := models.Product{
		Name:          reqData.Name,
		Description:   reqData.Description,
		Image:         reqData.Image,
		Price:         reqData.Price,
		PerDayEarning: reqData.PerDayEarning,
		ValidityDays:  reqData.ValidityDays,
		IsActive:      true,
	}

	if err := database.Database.Db.Create(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product created!", product)
}

// UpdateProduct edits a catalog entry (Admin only). In-flight orders are
// unaffected: they copied validity and per-day earning at purchase time.
func UpdateProduct(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	reqData, ok := c.Locals("validatedProductUpdate").(*struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		Image         *string  `json:"image"`
		Price         *float64 `json:"price"`
		PerDayEarning *float64 `json:"perDayEarning"`
		ValidityDays  *int     `json:"validityDays"`
		IsActive      *bool    `json:"isActive"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = false", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Image != nil {
		updates["image"] = *reqData.Image
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.PerDayEarning != nil {
		updates["per_day_earning"] = *reqData.PerDayEarning
	}
	if reqData.ValidityDays != nil {
		updates["validity_days"] = *reqData.ValidityDays
	}
	if reqData.IsActive != nil {
		updates["is_active"] = *reqData.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update product!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated!", product)
}

// DeleteProduct soft-deletes a catalog entry (Admin only)
func DeleteProduct(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = false", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	if err := db.Model(&product).Updates(map[string]interface{}{"is_deleted": true, "is_active": false}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted!", nil)
}
