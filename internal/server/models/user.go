// Package models содержит серверные модели предметной области:
// пользователи, марки и машины. Это модели уровня хранилища/сервиса,
// HTTP-схемы живут в пакете api.
package models

import "time"

// User — зарегистрированный пользователь.
//
// PasswordHash хранит только argon2id-хэш, plaintext нигде не сохраняется.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
