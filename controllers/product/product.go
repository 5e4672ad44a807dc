package productController

import (
	"earnbox/database"
	"earnbox/middleware"
	"earnbox/models"

	"github.com/gofiber/fiber/v2"
)

// ListProducts returns the active product catalog
func ListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	offset := (page - 1) * limit
	db := database.Database.Db

	query := db.Model(&models.Product{}).Where("is_active = true AND is_deleted = false")

	var total int64
	query.Count(&total)

	var products []models.Product
	if err := query.
		Order("price ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched!", fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetProduct returns a single product
func GetProduct(c *fiber.Ctx) error {
	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	var product models.Product
	if err := database.Database.Db.Where("id = ? AND is_active = true AND is_deleted = false", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched!", product)
}
