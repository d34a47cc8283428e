package presenters

import "github.com/gofiber/fiber/v2"

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	return c.Status(code).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the failure envelope. The error text is shown when
// present; otherwise message doubles as the error.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	errText := message
	if err != nil && err.Error() != "" {
		errText = err.Error()
	}
	return c.Status(code).JSON(Response{
		Status:  false,
		Message: message,
		Error:   errText,
	})
}
