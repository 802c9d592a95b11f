package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/yurakhomitsky/E-Shop/apperr"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles product image uploads
type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// UploadImage - POST /api/products/upload
//
// Saves the uploaded image under ./uploads/products and returns its
// public URL.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return apperr.Validation("Image file is required")
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return apperr.Validation("Only .jpg, .jpeg, and .png files are allowed")
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	destination := fmt.Sprintf("./uploads/products/%s", filename)

	if err := c.SaveFile(file, destination); err != nil {
		return apperr.Store("could not save file", err)
	}

	return c.JSON(fiber.Map{
		"url": fmt.Sprintf("/uploads/products/%s", filename),
	})
}
