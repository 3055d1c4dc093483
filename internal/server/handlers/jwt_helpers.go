package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - единственная ошибка верификации токена.
// Истекший, подделанный и некорректный токены намеренно неразличимы
// для вызывающего, чтобы ответ сервера не служил оракулом.
var ErrInvalidToken = errors.New("invalid token")

// TokenConfig содержит конфигурацию для выпуска и проверки токенов
type TokenConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// tokenClaims - claims токена: только id пользователя и временные границы
type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateToken создает подписанный HS256 токен, привязанный
// к одному пользователю, со сроком действия issuedAt + TTL.
// Одинаковые входы в разные моменты времени дают разные токены.
func GenerateToken(cfg TokenConfig, userID string) (string, error) {
	now := time.Now()

	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken проверяет подпись и срок действия токена и возвращает
// id пользователя. Любая причина отказа дает один и тот же ErrInvalidToken.
func ValidateToken(cfg TokenConfig, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC подпись
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
