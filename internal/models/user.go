package models

import (
	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Username     string         `gorm:"not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'RegularUser'" json:"role"`
	Name         string         `json:"name"`
	LastName     string         `json:"last_name"`
	DateBirth    datatypes.Date `json:"date_birth"`

	// Relations
	Contents []Content `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// PasswordResetToken - одноразовый код сброса пароля.
// Срок жизни контролируется фоновым sweep'ом и проверкой при использовании.
type PasswordResetToken struct {
	BaseModel
	Email string `gorm:"index;not null" json:"email"`
	Code  string `gorm:"type:varchar(6);not null" json:"-"`
}
