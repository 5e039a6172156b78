package constants

import (
	"fmt"
	"slices"
)

// ==========================
// ✅ Role dari claim JWT
// ==========================
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyStaffCanAccess  = "❌ Hanya instructor atau admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
)

var (
	AllRoles   = []string{RoleStudent, RoleInstructor, RoleAdmin}
	StaffRoles = []string{RoleInstructor, RoleAdmin}
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// IsStaffRole: instructor/admin boleh mengelola konten dan data user lain.
func IsStaffRole(role string) bool {
	return slices.Contains(StaffRoles, role)
}
