package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama oleh semua controller.
var Validate = validator.New()

// ValidationError mengubah validator.ValidationErrors jadi 422 per field.
// Error lain (bukan hasil validator) dianggap 400.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[key] = append(fields[key], msg)
	}
	return JsonValidationError(c, fields)
}

// BindAndValidate: parse body lalu jalankan tag validate.
// Return (handled=true) kalau response error sudah dikirim.
func BindAndValidate(c *fiber.Ctx, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return true, JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := Validate.Struct(dst); err != nil {
		return true, ValidationError(c, err)
	}
	return false, nil
}
