package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// BrandsService реализует бизнес-логику работы с марками.
//
// Понятия владельца у марки нет: любой аутентифицированный пользователь
// может создавать, менять и удалять марки. Удаление защищено ссылочной
// проверкой в репозитории: марка с машинами не удаляется.
type BrandsService struct {
	brands BrandsRepo
}

// NewBrandsService создаёт BrandsService.
func NewBrandsService(brands BrandsRepo) *BrandsService {
	return &BrandsService{brands: brands}
}

// BrandUpdate — частичное обновление марки.
type BrandUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// Create создаёт марку.
//
// Name обрезается по пробелам и должен быть >= 2 символов.
// Уникальность имени проверяет репозиторий в транзакции со вставкой.
func (s *BrandsService) Create(ctx context.Context, name string, description *string, isActive bool) (models.Brand, error) {
	name = strings.TrimSpace(name)

	ve := serr.NewValidationError()
	if utf8.RuneCountInString(name) < 2 {
		ve.Add("name", "must be at least 2 characters")
	}
	if err := ve.ErrOrNil(); err != nil {
		return models.Brand{}, err
	}

	return s.brands.Create(ctx, NewBrand{
		Name:        name,
		Description: description,
		IsActive:    isActive,
	})
}

// Get возвращает марку по id или ErrBrandNotFound.
func (s *BrandsService) Get(ctx context.Context, id int64) (models.Brand, error) {
	return s.brands.GetByID(ctx, id)
}

// List возвращает страницу марок с поиском по имени и фильтром is_active.
func (s *BrandsService) List(ctx context.Context, f BrandFilter) ([]models.Brand, error) {
	ve := serr.NewValidationError()
	validateListBounds(ve, f.Offset, f.Limit)
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	return s.brands.List(ctx, f)
}

// Update частично обновляет марку.
//
// Обновление имени на то же самое значение (байт-в-байт после trim)
// проходит без конфликта — репозиторий перепроверяет уникальность
// только реально изменившегося имени.
func (s *BrandsService) Update(ctx context.Context, id int64, upd BrandUpdate) (models.Brand, error) {
	patch := BrandPatch{
		Description: upd.Description,
		IsActive:    upd.IsActive,
	}

	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		ve := serr.NewValidationError()
		if utf8.RuneCountInString(name) < 2 {
			ve.Add("name", "must be at least 2 characters")
		}
		if err := ve.ErrOrNil(); err != nil {
			return models.Brand{}, err
		}
		patch.Name = &name
	}

	return s.brands.Update(ctx, id, patch)
}

// Delete удаляет марку.
//
// Ошибки:
//   - ErrBrandNotFound
//   - ErrBrandHasCars, если на марку ссылается хотя бы одна машина
func (s *BrandsService) Delete(ctx context.Context, id int64) error {
	return s.brands.Delete(ctx, id)
}
