package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationMessages flattens validator.ValidationErrors into "field: rule" lines.
func ValidationMessages(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		msg := fieldName(fe.Field()) + ": " + fe.Tag()
		if p := fe.Param(); p != "" {
			msg += "=" + p
		}
		out = append(out, msg)
	}
	return out
}

func fieldName(f string) string {
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ErrInvalidBody is returned by BindJSON when the body cannot be decoded.
var ErrInvalidBody = BadRequest("Invalid request body")

// BindJSON decodes the request body into dst and validates it.
func BindJSON(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return ErrInvalidBody
	}
	return v.Struct(dst)
}

// JsonBindError writes the failure returned by BindJSON.
func JsonBindError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, err)
	}
	return JsonAppError(c, err, "Invalid request body")
}
