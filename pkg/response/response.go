package response

import "github.com/gofiber/fiber/v2"

// Envelope wraps all API responses in a consistent structure.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details for failed responses.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OK sends a successful response with data.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: data})
}

// Accepted sends a 202 response for work started in the background.
func Accepted(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusAccepted).JSON(Envelope{Success: true, Data: data})
}

// Message sends a success response with just a message.
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true, Data: fiber.Map{"message": message}})
}

func errorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: &ErrorInfo{Code: code, Message: message}})
}

// BadRequest sends a 400 response.
func BadRequest(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", message)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "unauthorized"
	}
	return errorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", message)
}

// NotFound sends a 404 response.
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "not found"
	}
	return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", message)
}

// Internal sends a 500 response.
func Internal(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "internal server error"
	}
	return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL", message)
}
