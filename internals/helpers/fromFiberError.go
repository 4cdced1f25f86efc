package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns an error returned from a transaction (usually *fiber.Error)
// into the standard JSON error. Anything else becomes a 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// ErrorHandler is the app-wide fiber error handler so bare fiber.NewError returns
// from middlewares share the JSON error shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
