package main

import (
	"log"

	"github.com/yurakhomitsky/E-Shop/config"
	"github.com/yurakhomitsky/E-Shop/handlers"
	"github.com/yurakhomitsky/E-Shop/middleware"
	"github.com/yurakhomitsky/E-Shop/utils"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty (check your .env)")
	}

	db := config.MustOpenDatabase(cfg)
	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	config.SeedAdminUser(db)

	tm := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)

	app := fiber.New(fiber.Config{
		AppName:      "E-Shop Backend",
		ServerHeader: "E-Shop Backend Server/1.0",
		ErrorHandler: middleware.ErrorHandler,
	})

	middleware.SetupMiddleware(app)

	// Uploaded product images
	app.Static("/uploads", "./uploads")

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	authHandler := handlers.NewAuthHandler(db, tm)
	categoryHandler := handlers.NewCategoryHandler(db)
	productHandler := handlers.NewProductHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	userHandler := handlers.NewUserHandler(db)
	uploadHandler := handlers.NewUploadHandler()

	api := app.Group("/api")

	// Public routes. Registration and login are registered ahead of
	// the gate, so they bypass token validation.
	api.Post("/users/login", authHandler.Login)
	api.Post("/users", authHandler.Register)

	// Every route below requires a valid, unexpired token.
	api.Use(middleware.Protected(tm))

	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	// Static product paths must come before the :id routes.
	api.Get("/products/count", productHandler.GetProductCount)
	api.Get("/products/featured/:limit?", productHandler.GetFeaturedProducts)
	api.Post("/products/upload", uploadHandler.UploadImage)
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/orders", orderHandler.GetOrders)

	api.Get("/users", userHandler.GetUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", middleware.RequireAdmin(), userHandler.DeleteUser)

	log.Printf("Server starting on host %s in port %s", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
