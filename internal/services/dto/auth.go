package dto

// RegisterRequest - запрос регистрации нового пользователя
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Name      string `json:"name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	DateBirth string `json:"date_birth" validate:"omitempty,datetime=2006-01-02"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// RequestPasswordResetRequest - запрос кода сброса пароля
type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest - потребление кода сброса
type ResetPasswordRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Code           string `json:"code" validate:"required,len=6,numeric"`
	NewPassword    string `json:"new_password" validate:"required,min=6"`
	RepeatPassword string `json:"repeat_password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}
