// HTTP-хендлеры марок
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// CreateBrandRequest описывает тело запроса создания марки.
// is_active по умолчанию true, если поле не передано.
type CreateBrandRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateBrandRequest — частичное обновление марки.
type UpdateBrandRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// BrandResponse — публичное представление марки.
type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BrandListResponse — страница марок с параметрами пагинации.
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

func toBrandResponse(b models.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// CreateBrand создаёт марку.
//
// @Summary      Create brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateBrandRequest true "New brand"
// @Success      201 {object} BrandResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or brand name already in use"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /brands [post]
func (h *Handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req CreateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	brand, err := h.Svc.Brands.Create(r.Context(), req.Name, req.Description, isActive)
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		switch {
		case errors.Is(err, serr.ErrBrandNameTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrBrandNameTaken)
		default:
			h.Log.Logger.Sugar().Errorw("create brand failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, toBrandResponse(brand))
}

// ListBrands возвращает страницу марок.
//
// Query-параметры: offset, limit, search (подстрока имени,
// регистронезависимо), is_active.
//
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        offset query int false "Records to skip" default(0)
// @Param        limit query int false "Page size" default(100)
// @Param        search query string false "Substring of brand name"
// @Param        is_active query bool false "Filter by active flag"
// @Success      200 {object} BrandListResponse
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /brands [get]
func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	ve := serr.NewValidationError()
	offset, limit := pagination(r, ve)
	isActive := queryBoolPtr(r, "is_active", ve)
	if err := ve.ErrOrNil(); err != nil {
		WriteValidationError(w, ve)
		return
	}

	brands, err := h.Svc.Brands.List(r.Context(), service.BrandFilter{
		Search:   r.URL.Query().Get("search"),
		IsActive: isActive,
		Offset:   offset,
		Limit:    limit,
	})
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		h.Log.Logger.Sugar().Errorw("list brands failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	out := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, toBrandResponse(b))
	}
	WriteJSON(w, http.StatusOK, BrandListResponse{Brands: out, Offset: offset, Limit: limit})
}

// GetBrand возвращает марку по id.
//
// @Summary      Get brand by id
// @Tags         brands
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Brand id"
// @Success      200 {object} BrandResponse
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "Brand not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /brands/{id} [get]
func (h *Handler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	brand, err := h.Svc.Brands.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrBrandNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrBrandNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get brand failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toBrandResponse(brand))
}

// UpdateBrand частично обновляет марку.
//
// @Summary      Update brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Brand id"
// @Param        request body UpdateBrandRequest true "Fields to update"
// @Success      200 {object} BrandResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or brand name already in use"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "Brand not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /brands/{id} [put]
func (h *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateBrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	brand, err := h.Svc.Brands.Update(r.Context(), id, service.BrandUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		switch {
		case errors.Is(err, serr.ErrBrandNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrBrandNotFound)
		case errors.Is(err, serr.ErrBrandNameTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrBrandNameTaken)
		default:
			h.Log.Logger.Sugar().Errorw("update brand failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toBrandResponse(brand))
}

// DeleteBrand удаляет марку, если на неё не ссылается ни одна машина.
//
// @Summary      Delete brand
// @Tags         brands
// @Security     BearerAuth
// @Param        id path int true "Brand id"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Brand has associated cars"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "Brand not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /brands/{id} [delete]
func (h *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Brands.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrBrandNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrBrandNotFound)
		case errors.Is(err, serr.ErrBrandHasCars):
			WriteError(w, http.StatusBadRequest, serr.ErrBrandHasCars)
		default:
			h.Log.Logger.Sugar().Errorw("delete brand failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
