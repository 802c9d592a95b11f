package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yurakhomitsky/E-Shop/apperr"

	"github.com/gofiber/fiber/v2"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "validation error",
			err:            apperr.Validation("Invalid Category"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid Category",
		},
		{
			name:           "not found",
			err:            apperr.NotFound("Product not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   "Product not found",
		},
		{
			name:           "auth error",
			err:            apperr.Auth("Token is invalid"),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is invalid",
		},
		{
			name:           "store error yields generic message",
			err:            apperr.Store("could not fetch products", errors.New("dial tcp: connection refused")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "unclassified error yields generic message",
			err:            errors.New("some internal detail"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal Server Error",
		},
		{
			name:           "fiber error keeps its status",
			err:            fiber.ErrMethodNotAllowed,
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.expectedStatus)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("io.ReadAll() error = %v", err)
			}
			bodyStr := string(body)

			if !strings.Contains(bodyStr, `"success":false`) {
				t.Errorf("body = %v, want failure envelope", bodyStr)
			}
			if !strings.Contains(bodyStr, tt.expectedBody) {
				t.Errorf("body = %v, want to contain %q", bodyStr, tt.expectedBody)
			}
		})
	}
}

func TestErrorHandler_NeverLeaksStoreCause(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperr.Store("could not fetch products", errors.New("pq: relation does not exist"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "pq:") || strings.Contains(string(body), "relation") {
		t.Errorf("store cause leaked to client: %v", string(body))
	}
}
