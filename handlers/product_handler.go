package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// CreateProductRequest defines the payload for product creation.
// CountInStock is a pointer so a missing field can be told apart from
// a legitimate zero.
type CreateProductRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	RichDescription string   `json:"richDescription"`
	Image           string   `json:"image"`
	Images          []string `json:"images"`
	Brand           string   `json:"brand"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	CountInStock    *int     `json:"countInStock"`
	Rating          float64  `json:"rating"`
	NumOfReviews    int      `json:"numOfReviews"`
	IsFeatured      bool     `json:"isFeatured"`
}

// UpdateProductRequest carries a partial update; absent fields are
// left untouched.
type UpdateProductRequest struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	RichDescription *string   `json:"richDescription"`
	Image           *string   `json:"image"`
	Images          *[]string `json:"images"`
	Brand           *string   `json:"brand"`
	Price           *float64  `json:"price"`
	Category        *string   `json:"category"`
	CountInStock    *int      `json:"countInStock"`
	Rating          *float64  `json:"rating"`
	NumOfReviews    *int      `json:"numOfReviews"`
	IsFeatured      *bool     `json:"isFeatured"`
}

// resolveCategory checks that the referenced category exists before
// any product write.
func (h *ProductHandler) resolveCategory(id string) (*models.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.Validation("Invalid Category")
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("Invalid Category")
		}
		return nil, apperr.Store("could not resolve category", err)
	}
	return &category, nil
}

// GetAllProducts - GET /api/products?categories=id1,id2
//
// The category reference is resolved to the full entity in the
// response. An optional comma-separated identifier list narrows the
// result to products whose category is in the set.
func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	query := h.DB.Preload("Category")

	if filter := c.Query("categories"); filter != "" {
		ids := strings.Split(filter, ",")
		for _, id := range ids {
			if _, err := uuid.Parse(id); err != nil {
				return apperr.Validation("Invalid category id in filter")
			}
		}
		query = query.Where("category_id IN ?", ids)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return apperr.Store("could not fetch products", err)
	}

	return c.JSON(products)
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Product not found")
	}

	var product models.Product
	if err := h.DB.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Store("could not fetch product", err)
	}

	return c.JSON(product)
}

// GetProductCount - GET /api/products/count
func (h *ProductHandler) GetProductCount(c *fiber.Ctx) error {
	var count int64
	if err := h.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return apperr.Store("could not count products", err)
	}
	return c.JSON(models.CountResponse{Count: count})
}

// GetFeaturedProducts - GET /api/products/featured/:limit?
//
// A limit of zero (or an absent limit) means no cap.
func (h *ProductHandler) GetFeaturedProducts(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Params("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return apperr.Validation("Invalid limit")
		}
		limit = parsed
	}

	query := h.DB.Preload("Category").Where("is_featured = ?", true)
	if limit > 0 {
		query = query.Limit(limit)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return apperr.Store("could not fetch featured products", err)
	}

	return c.JSON(products)
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name == "" {
		return apperr.Validation("Product name is required")
	}
	if req.Description == "" {
		return apperr.Validation("Product description is required")
	}
	if req.CountInStock == nil {
		return apperr.Validation("countInStock is required")
	}
	if *req.CountInStock < models.MinCountInStock || *req.CountInStock > models.MaxCountInStock {
		return apperr.Validation("countInStock must be between 0 and 999")
	}
	if req.Price < 0 {
		return apperr.Validation("Price must not be negative")
	}

	category, err := h.resolveCategory(req.Category)
	if err != nil {
		return err
	}

	product := models.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		RichDescription: req.RichDescription,
		Image:           req.Image,
		Images:          req.Images,
		Brand:           req.Brand,
		Price:           req.Price,
		CategoryID:      category.ID,
		CountInStock:    *req.CountInStock,
		Rating:          req.Rating,
		NumOfReviews:    req.NumOfReviews,
		IsFeatured:      req.IsFeatured,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		return apperr.Store("could not create product", err)
	}

	product.Category = *category
	return c.JSON(product)
}

// UpdateProduct - PUT /api/products/:id
//
// Partial merge: only fields present in the payload replace stored
// values. A supplied category reference is re-validated exactly as on
// create.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Product not found")
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Store("could not fetch product", err)
	}

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return apperr.Validation("Product name is required")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		if *req.Description == "" {
			return apperr.Validation("Product description is required")
		}
		product.Description = *req.Description
	}
	if req.CountInStock != nil {
		if *req.CountInStock < models.MinCountInStock || *req.CountInStock > models.MaxCountInStock {
			return apperr.Validation("countInStock must be between 0 and 999")
		}
		product.CountInStock = *req.CountInStock
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return apperr.Validation("Price must not be negative")
		}
		product.Price = *req.Price
	}
	if req.Category != nil {
		category, err := h.resolveCategory(*req.Category)
		if err != nil {
			return err
		}
		product.CategoryID = category.ID
	}
	if req.RichDescription != nil {
		product.RichDescription = *req.RichDescription
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.NumOfReviews != nil {
		product.NumOfReviews = *req.NumOfReviews
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := h.DB.Save(&product).Error; err != nil {
		return apperr.Store("could not update product", err)
	}

	if err := h.DB.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return apperr.Store("could not fetch product", err)
	}

	return c.JSON(product)
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("Product not found")
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		return apperr.Store("could not fetch product", err)
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		return apperr.Store("could not delete product", err)
	}

	return c.JSON(models.SuccessResponse("The product is deleted"))
}
