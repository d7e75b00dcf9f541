package models

type UserRole string

const (
	UserRoleAdmin   UserRole = "Admin"
	UserRoleRegular UserRole = "RegularUser"
)

// ValidRole проверяет, что роль входит в список известных
func ValidRole(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleRegular
}
