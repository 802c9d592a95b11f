package handlers

import (
	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// GetOrders - GET /api/orders
//
// Orders are read-only in this API: newest first, with the ordering
// user resolved in the response.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders := []models.Order{}
	if err := h.DB.Preload("User").Order("date_ordered desc").Find(&orders).Error; err != nil {
		return apperr.Store("could not fetch orders", err)
	}
	return c.JSON(orders)
}
