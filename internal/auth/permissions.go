package auth

import (
	"errors"

	"inspirahub/internal/models"
)

// IsAdmin проверяет является ли пользователь администратором
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}

// CanAccessResource решает, может ли пользователь работать с чужим ресурсом.
// Разрешено владельцу и администратору.
func CanAccessResource(claims *Claims, resourceOwnerID int64) bool {
	if claims == nil {
		return false
	}
	return claims.UserID == resourceOwnerID || IsAdmin(claims)
}

// HasRole проверяет точное совпадение роли
func HasRole(claims *Claims, role models.UserRole) bool {
	return claims != nil && claims.Role == role
}

// ValidateRole проверяет валидность роли
func ValidateRole(role models.UserRole) error {
	if !models.ValidRole(role) {
		return errors.New("invalid role")
	}
	return nil
}
