package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ailms_backend/internals/constants"
)

// Ambil user_id dari c.Locals("user_id").
// Return 401 kalau belum login.
func GetUserIDFromToken(c *fiber.Ctx) (string, error) {
	switch t := c.Locals("user_id").(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s, nil
		}
	case []byte:
		if s := strings.TrimSpace(string(t)); s != "" {
			return s, nil
		}
	}
	return "", fiber.NewError(fiber.StatusUnauthorized, "User belum login")
}

// GetRoleFromToken: role dari JWT, default student.
func GetRoleFromToken(c *fiber.Ctx) string {
	if r, ok := c.Locals("userRole").(string); ok && r != "" {
		return r
	}
	return constants.RoleStudent
}

// IsStaff: instructor/admin boleh mengakses data milik user lain.
func IsStaff(c *fiber.Ctx) bool {
	return constants.IsStaffRole(GetRoleFromToken(c))
}
