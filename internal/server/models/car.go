package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelType — тип топлива машины.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelEthanol  FuelType = "ethanol"
	FuelFlex     FuelType = "flex"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Valid проверяет, что значение входит в список известных типов топлива.
func (f FuelType) Valid() bool {
	switch f {
	case FuelGasoline, FuelEthanol, FuelFlex, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// TransmissionType — тип коробки передач.
type TransmissionType string

const (
	TransmissionManual        TransmissionType = "manual"
	TransmissionAutomatic     TransmissionType = "automatic"
	TransmissionSemiAutomatic TransmissionType = "semi_automatic"
	TransmissionCVT           TransmissionType = "cvt"
)

// Valid проверяет, что значение входит в список известных трансмиссий.
func (t TransmissionType) Valid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic, TransmissionCVT:
		return true
	}
	return false
}

// Car — машина, принадлежащая пользователю и ссылающаяся на марку.
//
// Plate хранится нормализованной (trim + upper) и уникален.
// OwnerID выставляется при создании и больше никогда не меняется.
// Brand и Owner подгружаются join-ом для ответов API.
type Car struct {
	ID           int64
	Model        string
	FactoryYear  int
	ModelYear    int
	Color        string
	Plate        string
	FuelType     FuelType
	Transmission TransmissionType
	Price        decimal.Decimal
	Description  *string
	IsAvailable  bool
	BrandID      int64
	OwnerID      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Brand Brand
	Owner User
}
