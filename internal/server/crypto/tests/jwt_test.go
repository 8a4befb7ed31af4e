package tests

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/crypto"
)

// Токен подписывается HS256 и несёт id пользователя в subject
func TestNewAccessToken_Claims(t *testing.T) {
	cfg := crypto.JWTConfig{
		SigningKey: "supersecretkeysupersecretkey123456",
		AccessTTL:  time.Minute,
	}

	tokenStr, err := crypto.NewAccessToken(42, cfg)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			t.Fatalf("unexpected signing method: %v", token.Method)
		}
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatal("expected valid token")
	}

	if claims.Subject != "42" {
		t.Fatalf("expected subject %q, got %q", "42", claims.Subject)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("expected exp and iat to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Minute {
		t.Fatalf("expected ttl %v, got %v", time.Minute, got)
	}
}

// Токен с чужим ключом не проходит проверку подписи
func TestNewAccessToken_WrongKey(t *testing.T) {
	cfg := crypto.JWTConfig{SigningKey: "key-one", AccessTTL: time.Minute}

	tokenStr, err := crypto.NewAccessToken(1, cfg)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	_, err = jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte("another-key"), nil
	})
	if err == nil {
		t.Fatal("expected signature verification to fail")
	}
}
