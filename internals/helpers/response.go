package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate runs validator/v10 struct tags.
func Validate(v any) error {
	return validate.Struct(v)
}

// ValidationError answers 422 with one entry per failed field.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[fe.Field()] = append(fields[fe.Field()], msg)
	}
	return JsonValidationError(c, fields)
}

// BindAndValidate parses the JSON body into dst and validates it.
// On failure the error response is already written; callers just return it.
func BindAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := Validate(dst); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}
