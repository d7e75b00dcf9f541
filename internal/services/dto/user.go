package dto

import (
	"time"

	"inspirahub/internal/models"
)

// UserResponse - публичное представление пользователя (без хеша пароля)
type UserResponse struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	LastName  string          `json:"last_name"`
	DateBirth string          `json:"date_birth"`
	Role      models.UserRole `json:"role"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewUserResponse строит ответ из модели
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Name:      user.Name,
		LastName:  user.LastName,
		DateBirth: time.Time(user.DateBirth).Format("2006-01-02"),
		Role:      user.Role,
		UpdatedAt: user.UpdatedAt,
	}
}

// UpdateUserRequest - обновление профиля.
// Пустой пароль означает "не менять".
type UpdateUserRequest struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=50"`
	Email     string `json:"email" validate:"omitempty,email"`
	Name      string `json:"name"`
	LastName  string `json:"last_name"`
	DateBirth string `json:"date_birth" validate:"omitempty,datetime=2006-01-02"`
	Password  string `json:"password" validate:"omitempty,min=6"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
}
