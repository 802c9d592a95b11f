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

type AuthHandler struct {
	DB *gorm.DB
	TM *utils.TokenManager
}

func NewAuthHandler(db *gorm.DB, tm *utils.TokenManager) *AuthHandler {
	return &AuthHandler{DB: db, TM: tm}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"isAdmin"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register - POST /api/users (public)
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	if req.Name == "" {
		return apperr.Validation("Name is required")
	}
	if req.Email == "" {
		return apperr.Validation("Email is required")
	}
	if req.Password == "" {
		return apperr.Validation("Password is required")
	}

	var count int64
	if err := h.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return apperr.Store("could not check email", err)
	}
	if count > 0 {
		return apperr.Validation("Email is already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return apperr.Store("could not hash password", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Phone:     req.Phone,
		IsAdmin:   req.IsAdmin,
		Street:    req.Street,
		Apartment: req.Apartment,
		Zip:       req.Zip,
		City:      req.City,
		Country:   req.Country,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		return apperr.Store("could not create user", err)
	}

	return c.JSON(user)
}

// Login - POST /api/users/login (public)
//
// Both failure cases answer 400 with distinct messages, matching the
// long-standing behavior of this API.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid input")
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("user not found"))
		}
		return apperr.Store("could not fetch user", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("password is wrong"))
	}

	token, err := h.TM.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return apperr.Store("could not issue token", err)
	}

	return c.JSON(fiber.Map{
		"user":  user.Email,
		"token": token,
	})
}
