package models

import "time"

// Brand — марка автомобиля.
//
// Name уникален (регистрозависимо). Description опционален.
type Brand struct {
	ID          int64
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
