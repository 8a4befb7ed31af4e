// HTTP-хендлеры машин
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// CreateCarRequest описывает тело запроса создания машины.
// Владельцем становится вызывающий; owner_id в теле не принимается.
// is_available по умолчанию true, если поле не передано.
type CreateCarRequest struct {
	Model        string          `json:"model"`
	FactoryYear  int             `json:"factory_year"`
	ModelYear    int             `json:"model_year"`
	Color        string          `json:"color"`
	Plate        string          `json:"plate"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Price        decimal.Decimal `json:"price"`
	Description  *string         `json:"description"`
	IsAvailable  *bool           `json:"is_available"`
	BrandID      int64           `json:"brand_id"`
}

// UpdateCarRequest — частичное обновление машины.
// Поля owner_id здесь нет: даже если клиент его пришлёт, JSON-декодер
// молча отбросит его ещё до сервисного слоя.
type UpdateCarRequest struct {
	Model        *string          `json:"model"`
	FactoryYear  *int             `json:"factory_year"`
	ModelYear    *int             `json:"model_year"`
	Color        *string          `json:"color"`
	Plate        *string          `json:"plate"`
	FuelType     *string          `json:"fuel_type"`
	Transmission *string          `json:"transmission"`
	Price        *decimal.Decimal `json:"price"`
	Description  *string          `json:"description"`
	IsAvailable  *bool            `json:"is_available"`
	BrandID      *int64           `json:"brand_id"`
}

// CarResponse — публичное представление машины с вложенными маркой и владельцем.
type CarResponse struct {
	ID           int64           `json:"id"`
	Model        string          `json:"model"`
	FactoryYear  int             `json:"factory_year"`
	ModelYear    int             `json:"model_year"`
	Color        string          `json:"color"`
	Plate        string          `json:"plate"`
	FuelType     string          `json:"fuel_type"`
	Transmission string          `json:"transmission"`
	Price        decimal.Decimal `json:"price"`
	Description  *string         `json:"description"`
	IsAvailable  bool            `json:"is_available"`
	BrandID      int64           `json:"brand_id"`
	OwnerID      int64           `json:"owner_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Brand        BrandResponse   `json:"brand"`
	Owner        UserResponse    `json:"owner"`
}

// CarListResponse — страница машин с параметрами пагинации.
type CarListResponse struct {
	Cars   []CarResponse `json:"cars"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
}

func toCarResponse(c models.Car) CarResponse {
	return CarResponse{
		ID:           c.ID,
		Model:        c.Model,
		FactoryYear:  c.FactoryYear,
		ModelYear:    c.ModelYear,
		Color:        c.Color,
		Plate:        c.Plate,
		FuelType:     string(c.FuelType),
		Transmission: string(c.Transmission),
		Price:        c.Price,
		Description:  c.Description,
		IsAvailable:  c.IsAvailable,
		BrandID:      c.BrandID,
		OwnerID:      c.OwnerID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Brand:        toBrandResponse(c.Brand),
		Owner:        toUserResponse(c.Owner),
	}
}

// writeCarError маппит доменные ошибки машин в HTTP.
// Общая часть для всех хендлеров машин — набор ошибок у них одинаковый.
func (h *Handler) writeCarError(w http.ResponseWriter, err error, op string) {
	if ve, ok := serr.AsValidation(err); ok {
		WriteValidationError(w, ve)
		return
	}
	switch {
	case errors.Is(err, serr.ErrCarNotFound):
		WriteError(w, http.StatusNotFound, serr.ErrCarNotFound)
	case errors.Is(err, serr.ErrForbidden):
		WriteError(w, http.StatusForbidden, serr.ErrForbidden)
	case errors.Is(err, serr.ErrPlateTaken):
		WriteError(w, http.StatusBadRequest, serr.ErrPlateTaken)
	case errors.Is(err, serr.ErrBrandRefNotFound):
		WriteError(w, http.StatusBadRequest, serr.ErrBrandRefNotFound)
	default:
		h.Log.Logger.Sugar().Errorw(op+" failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}

// CreateCar создаёт машину, владельцем становится вызывающий.
//
// @Summary      Create car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCarRequest true "New car"
// @Success      201 {object} CarResponse
// @Failure      400 {object} ErrorResponse "Bad JSON, plate already in use or brand not found"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cars [post]
func (h *Handler) CreateCar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req CreateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	car, err := h.Svc.Cars.Create(r.Context(), user.ID, service.CarCreate{
		Model:        req.Model,
		FactoryYear:  req.FactoryYear,
		ModelYear:    req.ModelYear,
		Color:        req.Color,
		Plate:        req.Plate,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Price:        req.Price,
		Description:  req.Description,
		IsAvailable:  isAvailable,
		BrandID:      req.BrandID,
	})
	if err != nil {
		h.writeCarError(w, err, "create car")
		return
	}

	WriteJSON(w, http.StatusCreated, toCarResponse(car))
}

// ListCars возвращает страницу машин вызывающего пользователя.
// Фильтр по владельцу скрытый и не отключается query-параметрами.
//
// @Summary      List caller's cars
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        offset query int false "Records to skip" default(0)
// @Param        limit query int false "Page size" default(100)
// @Param        search query string false "Substring of model or plate"
// @Param        brand_id query int false "Filter by brand"
// @Param        fuel_type query string false "Filter by fuel type"
// @Param        transmission query string false "Filter by transmission"
// @Param        is_available query bool false "Filter by availability"
// @Param        min_price query number false "Inclusive lower price bound"
// @Param        max_price query number false "Inclusive upper price bound"
// @Success      200 {object} CarListResponse
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cars [get]
func (h *Handler) ListCars(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	ve := serr.NewValidationError()
	offset, limit := pagination(r, ve)

	f := service.CarFilter{
		Search:      r.URL.Query().Get("search"),
		BrandID:     queryInt64Ptr(r, "brand_id", ve),
		IsAvailable: queryBoolPtr(r, "is_available", ve),
		MinPrice:    queryDecimalPtr(r, "min_price", ve),
		MaxPrice:    queryDecimalPtr(r, "max_price", ve),
		Offset:      offset,
		Limit:       limit,
	}
	if raw := r.URL.Query().Get("fuel_type"); raw != "" {
		ft := models.FuelType(raw)
		if !ft.Valid() {
			ve.Add("fuel_type", "invalid fuel type")
		}
		f.FuelType = &ft
	}
	if raw := r.URL.Query().Get("transmission"); raw != "" {
		tr := models.TransmissionType(raw)
		if !tr.Valid() {
			ve.Add("transmission", "invalid transmission type")
		}
		f.Transmission = &tr
	}
	if err := ve.ErrOrNil(); err != nil {
		WriteValidationError(w, ve)
		return
	}

	cars, err := h.Svc.Cars.List(r.Context(), user, f)
	if err != nil {
		h.writeCarError(w, err, "list cars")
		return
	}

	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, toCarResponse(c))
	}
	WriteJSON(w, http.StatusOK, CarListResponse{Cars: out, Offset: offset, Limit: limit})
}

// GetCar возвращает машину по id, если она принадлежит вызывающему.
//
// @Summary      Get car by id
// @Tags         cars
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Car id"
// @Success      200 {object} CarResponse
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not enough permissions"
// @Failure      404 {object} ErrorResponse "Car not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cars/{id} [get]
func (h *Handler) GetCar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	car, err := h.Svc.Cars.Get(r.Context(), user, id)
	if err != nil {
		h.writeCarError(w, err, "get car")
		return
	}

	WriteJSON(w, http.StatusOK, toCarResponse(car))
}

// UpdateCar частично обновляет машину вызывающего.
//
// @Summary      Update car
// @Tags         cars
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Car id"
// @Param        request body UpdateCarRequest true "Fields to update"
// @Success      200 {object} CarResponse
// @Failure      400 {object} ErrorResponse "Bad JSON, plate already in use or brand not found"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not enough permissions"
// @Failure      404 {object} ErrorResponse "Car not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cars/{id} [put]
func (h *Handler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	car, err := h.Svc.Cars.Update(r.Context(), user, id, service.CarUpdate{
		Model:        req.Model,
		FactoryYear:  req.FactoryYear,
		ModelYear:    req.ModelYear,
		Color:        req.Color,
		Plate:        req.Plate,
		FuelType:     req.FuelType,
		Transmission: req.Transmission,
		Price:        req.Price,
		Description:  req.Description,
		IsAvailable:  req.IsAvailable,
		BrandID:      req.BrandID,
	})
	if err != nil {
		h.writeCarError(w, err, "update car")
		return
	}

	WriteJSON(w, http.StatusOK, toCarResponse(car))
}

// DeleteCar удаляет машину вызывающего.
//
// @Summary      Delete car
// @Tags         cars
// @Security     BearerAuth
// @Param        id path int true "Car id"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not enough permissions"
// @Failure      404 {object} ErrorResponse "Car not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /cars/{id} [delete]
func (h *Handler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Cars.Delete(r.Context(), user, id); err != nil {
		h.writeCarError(w, err, "delete car")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
