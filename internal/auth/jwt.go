package auth

import (
	"errors"
	"time"

	"inspirahub/internal/config"
	"inspirahub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims - типизированный набор claims токена.
// Разбирается один раз при валидации, дальше по коду только поля.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64           `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	LastName  string          `json:"lastName"`
	DateBirth string          `json:"dateBirth"`
	Role      models.UserRole `json:"role"`
}

// TokenManager выпускает и проверяет JWT.
// Все параметры фиксируются при создании, глобального состояния нет.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL(),
	}
}

// Generate выпускает подписанный HS256 токен для пользователя
func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		LastName:  user.LastName,
		DateBirth: time.Time(user.DateBirth).Format("2006-01-02"),
		Role:      user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse проверяет подпись, issuer, audience и срок действия.
// Любой отказ схлопывается в ErrInvalidToken.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithAudience(m.audience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
