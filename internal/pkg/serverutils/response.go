package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ErrorBody is the error envelope for every non-200 response.
type ErrorBody struct {
	Error string `json:"error"`
}

// AppError is a service-level error carrying the HTTP status it should map
// to. Controllers return it as-is; the error middleware renders it.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidateRequest runs struct-tag validation on a request DTO.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "validation failed: %v", err)
	}
	return nil
}

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// the JSON error envelope. Unknown errors become 500s without leaking
// internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(ErrorBody{Error: appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorBody{Error: fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Error: "internal server error"})
	}
}
