package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/api"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-car-market/internal/shared/utils"
)

// Без is_active в теле марка создаётся активной
func TestHandler_CreateBrand_DefaultIsActive(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, b service.NewBrand) (models.Brand, error) {
			if b.Name != "Honda" || !b.IsActive {
				t.Fatalf("unexpected brand: %+v", b)
			}
			return models.Brand{ID: 1, Name: b.Name, IsActive: b.IsActive}, nil
		})

	body, _ := json.Marshal(api.CreateBrandRequest{Name: "Honda"})
	req := httptest.NewRequest(http.MethodPost, "/brands", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBrand(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var resp api.BrandResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || !resp.IsActive {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// Явный is_active=false уважается
func TestHandler_CreateBrand_ExplicitInactive(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Create(gomock.Any(), service.NewBrand{Name: "Saab", IsActive: false}).
		Return(models.Brand{ID: 2, Name: "Saab", IsActive: false}, nil)

	body, _ := json.Marshal(api.CreateBrandRequest{Name: "Saab", IsActive: utils.Ptr(false)})
	req := httptest.NewRequest(http.MethodPost, "/brands", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBrand(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}
}

func TestHandler_CreateBrand_NameTaken(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Brand{}, serr.ErrBrandNameTaken)

	body, _ := json.Marshal(api.CreateBrandRequest{Name: "Honda"})
	req := httptest.NewRequest(http.MethodPost, "/brands", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBrand(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeDetail(t, rec.Body); got != "brand name already in use" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

// Имя из одних пробелов — 422
func TestHandler_CreateBrand_Validation(t *testing.T) {
	t.Parallel()

	h, _, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(api.CreateBrandRequest{Name: "   "})
	req := httptest.NewRequest(http.MethodPost, "/brands", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateBrand(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}

	var resp api.ValidationErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Detail) == 0 || resp.Detail[0].Field != "name" {
		t.Fatalf("unexpected validation detail: %+v", resp.Detail)
	}
}

func TestHandler_ListBrands_IsActiveFilter(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		List(gomock.Any(), service.BrandFilter{
			IsActive: utils.Ptr(true),
			Offset:   0,
			Limit:    100,
		}).
		Return([]models.Brand{{ID: 1, Name: "Honda", IsActive: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/brands?is_active=true", nil)
	rec := httptest.NewRecorder()

	h.ListBrands(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp api.BrandListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Brands) != 1 || resp.Brands[0].Name != "Honda" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// Мусор в is_active — 422, репозиторий не трогаем
func TestHandler_ListBrands_BadIsActive(t *testing.T) {
	t.Parallel()

	h, _, _, _ := NewTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/brands?is_active=maybe", nil)
	rec := httptest.NewRecorder()

	h.ListBrands(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}
}

func TestHandler_GetBrand_NotFound(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		GetByID(gomock.Any(), int64(77)).
		Return(models.Brand{}, serr.ErrBrandNotFound)

	req := httptest.NewRequest(http.MethodGet, "/brands/77", nil)
	req = withPathID(req, "77")
	rec := httptest.NewRecorder()

	h.GetBrand(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if got := decodeDetail(t, rec.Body); got != "brand not found" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestHandler_UpdateBrand_Success(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Update(gomock.Any(), int64(1), service.BrandPatch{Name: utils.StrPtr("Toyota")}).
		Return(models.Brand{ID: 1, Name: "Toyota", IsActive: true}, nil)

	body, _ := json.Marshal(api.UpdateBrandRequest{Name: utils.StrPtr("Toyota")})
	req := httptest.NewRequest(http.MethodPut, "/brands/1", bytes.NewReader(body))
	req = withPathID(req, "1")
	rec := httptest.NewRecorder()

	h.UpdateBrand(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp api.BrandResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Toyota" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// Марку с машинами удалить нельзя — 400
func TestHandler_DeleteBrand_HasCars(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(serr.ErrBrandHasCars)

	req := httptest.NewRequest(http.MethodDelete, "/brands/1", nil)
	req = withPathID(req, "1")
	rec := httptest.NewRecorder()

	h.DeleteBrand(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := decodeDetail(t, rec.Body); got != "cannot delete brand with associated cars" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

func TestHandler_DeleteBrand_Success(t *testing.T) {
	t.Parallel()

	h, _, brands, _ := NewTestHandler(t)

	brands.EXPECT().
		Delete(gomock.Any(), int64(1)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/brands/1", nil)
	req = withPathID(req, "1")
	rec := httptest.NewRecorder()

	h.DeleteBrand(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
}
