// Package crypto содержит криптографические примитивы сервера:
//   - выпуск JWT access-токенов (HS256);
//   - хэширование и проверку паролей (argon2id).
package crypto

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig описывает параметры генерации JWT access-токена.
//
// Значения берутся из конфига один раз при старте процесса
// и дальше передаются явно (никакого глобального состояния).
type JWTConfig struct {
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// AccessTTL — срок жизни access-токена.
	AccessTTL time.Duration
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// В payload кладутся:
//   - sub — десятичная строка id пользователя
//   - iat — время выпуска
//   - exp — iat + AccessTTL
//
// Используется алгоритм подписи HS256.
// В случае ошибки подписи возвращается непустая ошибка.
func NewAccessToken(userID int64, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}
