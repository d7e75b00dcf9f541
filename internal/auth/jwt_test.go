package auth

import (
	"testing"
	"time"

	"inspirahub/internal/config"
	"inspirahub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:   "test-secret-key",
		Issuer:   "inspirahub",
		Audience: "inspirahub-api",
		TTLHours: 1,
	}
}

func testUser() *models.User {
	user := &models.User{
		Username: "tester",
		Email:    "tester@test.com",
		Role:     models.UserRoleRegular,
		Name:     "Тест",
		LastName: "Тестов",
	}
	user.ID = 42
	return user
}

// TestTokenManager_GenerateAndParse - валидный токен разбирается обратно
// со всеми claims
func TestTokenManager_GenerateAndParse(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testJWTConfig())

	token, err := tm.Generate(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "tester", claims.Subject)
	assert.Equal(t, "tester@test.com", claims.Email)
	assert.Equal(t, models.UserRoleRegular, claims.Role)
	assert.Equal(t, "inspirahub", claims.Issuer)
	assert.NotEmpty(t, claims.ID) // jti
}

// TestTokenManager_UniqueJTI - каждый токен получает свой jti
func TestTokenManager_UniqueJTI(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testJWTConfig())
	user := testUser()

	token1, err := tm.Generate(user)
	require.NoError(t, err)
	token2, err := tm.Generate(user)
	require.NoError(t, err)

	claims1, err := tm.Parse(token1)
	require.NoError(t, err)
	claims2, err := tm.Parse(token2)
	require.NoError(t, err)

	assert.NotEqual(t, claims1.ID, claims2.ID)
}

// TestTokenManager_Expired - просроченный токен отклоняется
func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	cfg.TTLHours = -1 // токен рождается уже мертвым
	tm := NewTokenManager(cfg)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestTokenManager_WrongSecret - подпись другим секретом отклоняется
func TestTokenManager_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testJWTConfig())
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.Secret = "completely-different-secret"
	other := NewTokenManager(otherCfg)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestTokenManager_WrongIssuerAudience - токен чужого издателя
// или для чужой аудитории отклоняется
func TestTokenManager_WrongIssuerAudience(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testJWTConfig())
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	wrongIssuer := testJWTConfig()
	wrongIssuer.Issuer = "someone-else"
	_, err = NewTokenManager(wrongIssuer).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongAudience := testJWTConfig()
	wrongAudience.Audience = "other-api"
	_, err = NewTokenManager(wrongAudience).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// TestTokenManager_Garbage - мусор вместо токена отклоняется
func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testJWTConfig())

	for _, bad := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := tm.Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "token: %q", bad)
	}
}

// TestTokenManager_ExpiryMatchesTTL - exp выставляется по TTL конфига
func TestTokenManager_ExpiryMatchesTTL(t *testing.T) {
	t.Parallel()

	cfg := testJWTConfig()
	cfg.TTLHours = 7 * 24
	tm := NewTokenManager(cfg)

	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)

	expected := time.Now().Add(cfg.TTL())
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}
