package handlers

import (
	"errors"

	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"
	"github.com/yurakhomitsky/E-Shop/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// UpdateUserRequest carries a partial update. The password is hashed
// when supplied and left completely untouched otherwise.
type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Phone     *string `json:"phone"`
	IsAdmin   *bool   `json:"isAdmin"`
	Street    *string `json:"street"`
	Apartment *string `json:"apartment"`
	Zip       *string `json:"zip"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
}

// GetUsers - GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users := []models.User{}
	if err := h.DB.Find(&users).Error; err != nil {
		return apperr.Store("could not fetch users", err)
	}
	return c.JSON(users)
}

// GetUser - GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("User not found")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Store("could not fetch user", err)
	}

	return c.JSON(user)
}

// UpdateUser - PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("User not found")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Store("could not fetch user", err)
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return apperr.Validation("Name is required")
		}
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if *req.Email == "" {
			return apperr.Validation("Email is required")
		}
		var count int64
		if err := h.DB.Model(&models.User{}).Where("email = ?", *req.Email).Count(&count).Error; err != nil {
			return apperr.Store("could not check email", err)
		}
		if count > 0 {
			return apperr.Validation("Email is already registered")
		}
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return apperr.Store("could not hash password", err)
		}
		user.Password = hashed
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Street != nil {
		user.Street = *req.Street
	}
	if req.Apartment != nil {
		user.Apartment = *req.Apartment
	}
	if req.Zip != nil {
		user.Zip = *req.Zip
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Country != nil {
		user.Country = *req.Country
	}

	if err := h.DB.Save(&user).Error; err != nil {
		return apperr.Store("could not update user", err)
	}

	return c.JSON(user)
}

// DeleteUser - DELETE /api/users/:id (admin only)
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound("User not found")
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("User not found")
		}
		return apperr.Store("could not fetch user", err)
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		return apperr.Store("could not delete user", err)
	}

	return c.JSON(models.SuccessResponse("The user is deleted"))
}
