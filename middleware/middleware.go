package middleware

import (
	"github.com/yurakhomitsky/E-Shop/apperr"
	"github.com/yurakhomitsky/E-Shop/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupMiddleware configures all application middleware
func SetupMiddleware(app *fiber.App) {
	// Request ID middleware - adds unique ID to each request
	app.Use(requestid.New())

	// Logger middleware - logs all requests
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	// Recover middleware - recovers from panics
	app.Use(recover.New())

	// Security middleware
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: "X-Request-ID",
	}))
}

// ErrorHandler translates handler errors into the uniform
// {success:false, message} failure body. Store errors and anything
// unclassified become a generic 500; the cause is never sent to the
// client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		code = fiber.StatusBadRequest
		msg = apperr.MessageOf(err, msg)
	case apperr.KindNotFound:
		code = fiber.StatusNotFound
		msg = apperr.MessageOf(err, msg)
	case apperr.KindAuth:
		code = fiber.StatusUnauthorized
		msg = apperr.MessageOf(err, msg)
	case apperr.KindStore:
		code = fiber.StatusInternalServerError
	default:
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			msg = e.Message
		}
	}

	return c.Status(code).JSON(models.ErrorResponse(msg))
}
