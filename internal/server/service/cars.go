package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// CarsService реализует бизнес-логику работы с машинами.
//
// Ответственность:
//   - валидация и нормализация (trim полей, upper-case номера);
//   - ownership guard: читать/менять/удалять машину может только владелец;
//   - скрытый фильтр списка: пользователь видит только свои машины.
//
// Уникальность номера и существование марки проверяет репозиторий
// в одной транзакции с записью.
type CarsService struct {
	cars CarsRepo
}

// NewCarsService создаёт CarsService.
func NewCarsService(cars CarsRepo) *CarsService {
	return &CarsService{cars: cars}
}

// CarCreate — входные данные создания машины (до нормализации).
type CarCreate struct {
	Model        string
	FactoryYear  int
	ModelYear    int
	Color        string
	Plate        string
	FuelType     string
	Transmission string
	Price        decimal.Decimal
	Description  *string
	IsAvailable  bool
	BrandID      int64
}

// CarUpdate — частичное обновление машины. nil-поле означает "не передано".
// owner_id здесь отсутствует: даже если клиент его пришлёт, поле молча
// игнорируется ещё на уровне схемы запроса.
type CarUpdate struct {
	Model        *string
	FactoryYear  *int
	ModelYear    *int
	Color        *string
	Plate        *string
	FuelType     *string
	Transmission *string
	Price        *decimal.Decimal
	Description  *string
	IsAvailable  *bool
	BrandID      *int64
}

// NormalizePlate приводит номер к каноническому виду: trim + upper.
// Уникальность номера проверяется по нормализованному значению.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func validateYear(ve *serr.ValidationError, field string, year int) {
	if year < 1900 || year > 2030 {
		ve.Add(field, "must be between 1900 and 2030")
	}
}

// Create создаёт машину, владельцем становится ownerID.
//
// Ошибки:
//   - *ValidationError
//   - ErrPlateTaken
//   - ErrBrandRefNotFound, если brand_id не указывает на существующую марку
func (s *CarsService) Create(ctx context.Context, ownerID int64, in CarCreate) (models.Car, error) {
	model := strings.TrimSpace(in.Model)
	color := strings.TrimSpace(in.Color)
	plate := NormalizePlate(in.Plate)
	fuel := models.FuelType(in.FuelType)
	transmission := models.TransmissionType(in.Transmission)

	ve := serr.NewValidationError()
	if utf8.RuneCountInString(model) < 2 {
		ve.Add("model", "must be at least 2 characters")
	}
	if utf8.RuneCountInString(color) < 2 {
		ve.Add("color", "must be at least 2 characters")
	}
	if n := utf8.RuneCountInString(plate); n < 7 || n > 10 {
		ve.Add("plate", "must be between 7 and 10 characters")
	}
	validateYear(ve, "factory_year", in.FactoryYear)
	validateYear(ve, "model_year", in.ModelYear)
	if !fuel.Valid() {
		ve.Add("fuel_type", "invalid fuel type")
	}
	if !transmission.Valid() {
		ve.Add("transmission", "invalid transmission type")
	}
	if !in.Price.IsPositive() {
		ve.Add("price", "must be greater than zero")
	}
	if err := ve.ErrOrNil(); err != nil {
		return models.Car{}, err
	}

	return s.cars.Create(ctx, NewCar{
		Model:        model,
		FactoryYear:  in.FactoryYear,
		ModelYear:    in.ModelYear,
		Color:        color,
		Plate:        plate,
		FuelType:     fuel,
		Transmission: transmission,
		Price:        in.Price,
		Description:  in.Description,
		IsAvailable:  in.IsAvailable,
		BrandID:      in.BrandID,
		OwnerID:      ownerID,
	})
}

// checkOwnership — ownership guard: сравнение id владельца с id вызывающего.
func checkOwnership(actor models.User, ownerID int64) error {
	if actor.ID != ownerID {
		return serr.ErrForbidden
	}
	return nil
}

// Get возвращает машину по id, если она принадлежит actor.
//
// Ошибки:
//   - ErrCarNotFound
//   - ErrForbidden, если машина чужая
func (s *CarsService) Get(ctx context.Context, actor models.User, id int64) (models.Car, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return models.Car{}, err
	}
	if err := checkOwnership(actor, car.OwnerID); err != nil {
		return models.Car{}, err
	}
	return car, nil
}

// List возвращает страницу машин ВЫЗЫВАЮЩЕГО пользователя.
// OwnerID в фильтре всегда перетирается id из токена — это скрытый
// фильтр, а не параметр запроса.
func (s *CarsService) List(ctx context.Context, actor models.User, f CarFilter) ([]models.Car, error) {
	f.OwnerID = actor.ID

	ve := serr.NewValidationError()
	validateListBounds(ve, f.Offset, f.Limit)
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		ve.Add("min_price", "must be greater than or equal to 0")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		ve.Add("max_price", "must be greater than or equal to 0")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	return s.cars.List(ctx, f)
}

// Update частично обновляет машину actor-а.
//
// Порядок проверок: валидация тела (422) -> существование (404) ->
// владение (403) -> конфликты уникальности/ссылок (400).
func (s *CarsService) Update(ctx context.Context, actor models.User, id int64, upd CarUpdate) (models.Car, error) {
	ve := serr.NewValidationError()
	patch := CarPatch{
		FactoryYear: upd.FactoryYear,
		ModelYear:   upd.ModelYear,
		Price:       upd.Price,
		Description: upd.Description,
		IsAvailable: upd.IsAvailable,
		BrandID:     upd.BrandID,
	}

	if upd.Model != nil {
		model := strings.TrimSpace(*upd.Model)
		if utf8.RuneCountInString(model) < 2 {
			ve.Add("model", "must be at least 2 characters")
		}
		patch.Model = &model
	}
	if upd.Color != nil {
		color := strings.TrimSpace(*upd.Color)
		if utf8.RuneCountInString(color) < 2 {
			ve.Add("color", "must be at least 2 characters")
		}
		patch.Color = &color
	}
	if upd.Plate != nil {
		plate := NormalizePlate(*upd.Plate)
		if n := utf8.RuneCountInString(plate); n < 7 || n > 10 {
			ve.Add("plate", "must be between 7 and 10 characters")
		}
		patch.Plate = &plate
	}
	if upd.FactoryYear != nil {
		validateYear(ve, "factory_year", *upd.FactoryYear)
	}
	if upd.ModelYear != nil {
		validateYear(ve, "model_year", *upd.ModelYear)
	}
	if upd.FuelType != nil {
		fuel := models.FuelType(*upd.FuelType)
		if !fuel.Valid() {
			ve.Add("fuel_type", "invalid fuel type")
		}
		patch.FuelType = &fuel
	}
	if upd.Transmission != nil {
		transmission := models.TransmissionType(*upd.Transmission)
		if !transmission.Valid() {
			ve.Add("transmission", "invalid transmission type")
		}
		patch.Transmission = &transmission
	}
	if upd.Price != nil && !upd.Price.IsPositive() {
		ve.Add("price", "must be greater than zero")
	}
	if err := ve.ErrOrNil(); err != nil {
		return models.Car{}, err
	}

	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return models.Car{}, err
	}
	if err := checkOwnership(actor, car.OwnerID); err != nil {
		return models.Car{}, err
	}

	return s.cars.Update(ctx, id, patch)
}

// Delete удаляет машину actor-а.
func (s *CarsService) Delete(ctx context.Context, actor models.User, id int64) error {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(actor, car.OwnerID); err != nil {
		return err
	}
	return s.cars.Delete(ctx, id)
}
