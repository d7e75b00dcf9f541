package services

import (
	"errors"
	"testing"
	"time"

	"inspirahub/internal/auth"
	"inspirahub/internal/config"
	"inspirahub/internal/models"
	"inspirahub/internal/services/dto"
	"inspirahub/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTPDown = errors.New("smtp down")

type authFixture struct {
	service   AuthService
	userRepo  *fakeUserRepo
	resetRepo *fakeResetRepo
	emails    *fakeEmailProvider
	tokens    *auth.TokenManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	resetRepo := newFakeResetRepo()
	emails := &fakeEmailProvider{}
	tokens := auth.NewTokenManager(config.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "inspirahub",
		Audience: "inspirahub-api",
		TTLHours: 1,
	})

	return &authFixture{
		service:   NewAuthService(userRepo, resetRepo, emails, tokens, 5*time.Minute),
		userRepo:  userRepo,
		resetRepo: resetRepo,
		emails:    emails,
		tokens:    tokens,
	}
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:  "tester",
		Email:     "tester@test.com",
		Password:  "super_password123",
		Name:      "Тест",
		LastName:  "Тестов",
		DateBirth: "1995-04-12",
	}
}

// TestRegisterAndLogin - золотой путь: регистрация, затем логин тем же паролем
func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	user, err := fx.service.Register(registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "tester", user.Username)
	assert.Equal(t, models.UserRoleRegular, user.Role)

	response, err := fx.service.Login(&dto.LoginRequest{
		Email:    "tester@test.com",
		Password: "super_password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, user.ID, response.User.ID)

	// Токен валиден и несет данные пользователя
	claims, err := fx.tokens.Parse(response.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.UserRoleRegular, claims.Role)
}

// TestRegister_AlwaysRegularUser - роль из запроса не принимается,
// регистрация всегда дает RegularUser
func TestRegister_AlwaysRegularUser(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	user, err := fx.service.Register(registerRequest())
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleRegular, user.Role)
}

// TestRegister_DuplicateEmail - повторный email дает конфликт,
// регистр букв не учитывается
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "another"
	dup.Email = "TESTER@test.com"
	_, err = fx.service.Register(dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

// TestRegister_WeakPassword - короткий пароль отклоняется до записи в БД
func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	req := registerRequest()
	req.Password = "123"
	_, err := fx.service.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	count, _ := fx.userRepo.CountAll()
	assert.Zero(t, count)
}

// TestLogin_GenericFailure - "нет аккаунта" и "неверный пароль"
// дают один и тот же ответ
func TestLogin_GenericFailure(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)

	_, err = fx.service.Login(&dto.LoginRequest{Email: "tester@test.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = fx.service.Login(&dto.LoginRequest{Email: "ghost@test.com", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

// TestPasswordResetFlow - полный цикл: запрос кода, сброс, логин новым паролем
func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)

	require.NoError(t, fx.service.RequestPasswordReset("tester@test.com"))

	codes := fx.emails.sentResetCodes()
	require.Len(t, codes, 1)
	require.Len(t, codes[0], 6)

	err = fx.service.ResetPassword(&dto.ResetPasswordRequest{
		Email:          "tester@test.com",
		Code:           codes[0],
		NewPassword:    "brand_new_password",
		RepeatPassword: "brand_new_password",
	})
	require.NoError(t, err)

	// Старый пароль больше не работает, новый работает
	_, err = fx.service.Login(&dto.LoginRequest{Email: "tester@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = fx.service.Login(&dto.LoginRequest{Email: "tester@test.com", Password: "brand_new_password"})
	assert.NoError(t, err)
}

// TestResetPassword_SingleUse - потребленный код второй раз не работает
func TestResetPassword_SingleUse(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)
	require.NoError(t, fx.service.RequestPasswordReset("tester@test.com"))

	codes := fx.emails.sentResetCodes()
	require.Len(t, codes, 1)

	req := &dto.ResetPasswordRequest{
		Email:          "tester@test.com",
		Code:           codes[0],
		NewPassword:    "brand_new_password",
		RepeatPassword: "brand_new_password",
	}
	require.NoError(t, fx.service.ResetPassword(req))

	req.NewPassword = "second_attempt"
	req.RepeatPassword = "second_attempt"
	err = fx.service.ResetPassword(req)
	assert.ErrorIs(t, err, apperrors.ErrResetCodeNotFound)
}

// TestResetPassword_PasswordMismatch - несовпадающие пароли
// отклоняются до поиска кода
func TestResetPassword_PasswordMismatch(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	err := fx.service.ResetPassword(&dto.ResetPasswordRequest{
		Email:          "tester@test.com",
		Code:           "123456",
		NewPassword:    "one_password",
		RepeatPassword: "other_password",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordsDoNotMatch)
}

// TestResetPassword_WrongCode - неверный код отклоняется
func TestResetPassword_WrongCode(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)
	require.NoError(t, fx.service.RequestPasswordReset("tester@test.com"))

	err = fx.service.ResetPassword(&dto.ResetPasswordRequest{
		Email:          "tester@test.com",
		Code:           "000000",
		NewPassword:    "brand_new_password",
		RepeatPassword: "brand_new_password",
	})
	assert.ErrorIs(t, err, apperrors.ErrResetCodeNotFound)
}

// TestResetPassword_StaleCode - код старше TTL отвергается и удаляется,
// даже если фоновая чистка до него еще не дошла
func TestResetPassword_StaleCode(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)
	require.NoError(t, fx.service.RequestPasswordReset("tester@test.com"))

	id, code := fx.resetRepo.lastCode()
	require.NotZero(t, id)
	fx.resetRepo.backdate(id, 10*time.Minute)

	err = fx.service.ResetPassword(&dto.ResetPasswordRequest{
		Email:          "tester@test.com",
		Code:           code,
		NewPassword:    "brand_new_password",
		RepeatPassword: "brand_new_password",
	})
	assert.ErrorIs(t, err, apperrors.ErrResetCodeNotFound)
	assert.Zero(t, fx.resetRepo.count())
}

// TestRequestPasswordReset_UnknownEmail - неизвестный email дает успех
// без следов в БД и без письма
func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	assert.NoError(t, fx.service.RequestPasswordReset("nobody@test.com"))
	assert.Zero(t, fx.resetRepo.count())
	assert.Empty(t, fx.emails.sentResetCodes())
}

// TestRequestPasswordReset_SendFailure - если письмо не ушло,
// строка с кодом не должна остаться в БД
func TestRequestPasswordReset_SendFailure(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	_, err := fx.service.Register(registerRequest())
	require.NoError(t, err)

	fx.emails.failResetCode = true
	err = fx.service.RequestPasswordReset("tester@test.com")
	assert.Error(t, err)
	assert.Zero(t, fx.resetRepo.count())
}

// TestChangePassword - смена пароля требует верный текущий пароль
func TestChangePassword(t *testing.T) {
	t.Parallel()

	fx := newAuthFixture(t)

	user, err := fx.service.Register(registerRequest())
	require.NoError(t, err)

	err = fx.service.ChangePassword(user.ID, "wrong_current", "new_password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	err = fx.service.ChangePassword(user.ID, "super_password123", "new_password123")
	require.NoError(t, err)

	_, err = fx.service.Login(&dto.LoginRequest{Email: "tester@test.com", Password: "new_password123"})
	assert.NoError(t, err)
}
