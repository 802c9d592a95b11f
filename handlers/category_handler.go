package handlers

import (
	"errors"

	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// CreateCategoryRequest defines the payload for category creation
type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// UpdateCategoryRequest carries a partial update; absent fields are
// left untouched.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories := []models.Category{}
	if err := h.DB.Find(&categories).Error; err != nil {
		return apperr.Store("could not fetch categories", err)
	}
	return c.JSON(categories)
}

// GetCategory - GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Category not found")
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return apperr.Store("could not fetch category", err)
	}

	return c.JSON(category)
}

// CreateCategory - POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name == "" {
		return apperr.Validation("Category name is required")
	}

	category := models.Category{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		return apperr.Store("could not create category", err)
	}

	return c.JSON(category)
}

// UpdateCategory - PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Category not found")
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return apperr.Store("could not fetch category", err)
	}

	var req UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return apperr.Validation("Category name is required")
		}
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := h.DB.Save(&category).Error; err != nil {
		return apperr.Store("could not update category", err)
	}

	return c.JSON(category)
}

// DeleteCategory - DELETE /api/categories/:id
//
// Deletion is rejected while any product still references the
// category, so products never end up with a dangling reference.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Category not found")
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Category not found")
		}
		return apperr.Store("could not fetch category", err)
	}

	var inUse int64
	if err := h.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
		return apperr.Store("could not check category references", err)
	}
	if inUse > 0 {
		return apperr.Validation("Category is referenced by products and cannot be deleted")
	}

	if err := h.DB.Delete(&category).Error; err != nil {
		return apperr.Store("could not delete category", err)
	}

	return c.JSON(models.SuccessResponse("The category is deleted"))
}
