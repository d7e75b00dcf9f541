package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"inspirahub/internal/auth"
	"inspirahub/internal/email"
	"inspirahub/internal/logger"
	"inspirahub/internal/models"
	"inspirahub/internal/repositories"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"

	"gorm.io/datatypes"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequestPasswordReset(emailAddr string) error
	ResetPassword(req *dto.ResetPasswordRequest) error
	ChangePassword(userID int64, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	resetRepo     repositories.ResetTokenRepository
	emailProvider email.Provider
	tokens        *auth.TokenManager
	resetCodeTTL  time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
	tokens *auth.TokenManager,
	resetCodeTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		resetRepo:     resetRepo,
		emailProvider: emailProvider,
		tokens:        tokens,
		resetCodeTTL:  resetCodeTTL,
	}
}

// Register - регистрация нового пользователя.
// Роль всегда RegularUser, админы создаются только сидом при старте.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dateBirth, err := parseDateBirth(req.DateBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date_birth must be in YYYY-MM-DD format")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleRegular,
		Name:         req.Name,
		LastName:     req.LastName,
		DateBirth:    dateBirth,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendWelcomeEmail(user.Email, user.Name)

	return dto.NewUserResponse(user), nil
}

// Login - аутентификация пользователя.
// "Нет такого аккаунта" и "неверный пароль" наружу не различаются.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// RequestPasswordReset - запрос кода сброса пароля.
// Для незарегистрированного email возвращает успех, чтобы не раскрывать
// существование аккаунта.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	code, err := generateResetCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	token := &models.PasswordResetToken{
		Email: user.Email,
		Code:  code,
	}
	if err := s.resetRepo.Create(token); err != nil {
		return apperrors.InternalError(err)
	}

	// Если письмо не ушло, код никому не доставлен - строка удаляется,
	// чтобы в БД не висел живой, но неизвестный пользователю код.
	if err := s.emailProvider.SendResetCode(user.Email, code); err != nil {
		logger.Error("failed to send reset code", "email", user.Email, "error", err)
		if delErr := s.resetRepo.Delete(token.ID); delErr != nil {
			logger.Error("failed to delete undelivered reset code", "error", delErr)
		}
		return apperrors.InternalError(err)
	}

	return nil
}

// ResetPassword - потребление кода сброса.
// Код одноразовый: после успешного сброса строка удаляется.
func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.RepeatPassword {
		return apperrors.ErrPasswordsDoNotMatch
	}

	token, err := s.resetRepo.FindByEmailAndCode(req.Email, req.Code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrResetCodeNotFound
		}
		return apperrors.InternalError(err)
	}

	// Просроченный код, который sweep еще не успел убрать, равносилен
	// отсутствующему.
	if time.Since(token.CreatedAt) > s.resetCodeTTL {
		if delErr := s.resetRepo.Delete(token.ID); delErr != nil {
			logger.Error("failed to delete expired reset code", "error", delErr)
		}
		return apperrors.ErrResetCodeNotFound
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrResetCodeNotFound
		}
		return apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.resetRepo.Delete(token.ID); err != nil {
		// Строку могла параллельно убрать фоновая чистка
		logger.Error("failed to delete consumed reset code", "error", err)
	}

	return nil
}

// ChangePassword - смена пароля (когда пользователь знает текущий)
func (s *AuthServiceImpl) ChangePassword(userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	return s.userRepo.Update(user)
}

// --- Helper functions ---

// generateResetCode генерирует равномерный 6-значный код из [100000, 999999]
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func parseDateBirth(value string) (datatypes.Date, error) {
	if value == "" {
		return datatypes.Date{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// sendWelcomeEmail отправляет приветственное письмо, не блокируя регистрацию
func (s *AuthServiceImpl) sendWelcomeEmail(to, name string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendWelcome(to, name); err != nil {
			logger.Error("failed to send welcome email", "email", to, "error", err)
		}
	}()
}
