// Разбор path- и query-параметров.
//
// Ошибки разбора — это ошибки валидации (422), а не 400: кривой offset
// или нечисловой id в пути семантически то же, что кривое поле тела.
package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// pathID разбирает {id} из пути. При нечисловом значении пишет 422
// и возвращает false.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ve := serr.NewValidationError()
		ve.Add("id", "must be an integer")
		WriteValidationError(w, ve)
		return 0, false
	}
	return id, true
}

// queryInt возвращает значение целочисленного query-параметра
// или def, если параметр не передан.
func queryInt(r *http.Request, name string, def int, ve *serr.ValidationError) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		ve.Add(name, "must be an integer")
		return def
	}
	return v
}

// queryInt64Ptr возвращает указатель на значение параметра или nil.
func queryInt64Ptr(r *http.Request, name string, ve *serr.ValidationError) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		ve.Add(name, "must be an integer")
		return nil
	}
	return &v
}

// queryBoolPtr возвращает указатель на bool-параметр или nil.
func queryBoolPtr(r *http.Request, name string, ve *serr.ValidationError) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		ve.Add(name, "must be a boolean")
		return nil
	}
	return &v
}

// queryDecimalPtr возвращает указатель на decimal-параметр или nil.
func queryDecimalPtr(r *http.Request, name string, ve *serr.ValidationError) *decimal.Decimal {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		ve.Add(name, "must be a number")
		return nil
	}
	return &v
}

// pagination разбирает offset/limit с дефолтами сервиса.
// Границы значений проверяет сервисный слой.
func pagination(r *http.Request, ve *serr.ValidationError) (offset, limit int) {
	offset = queryInt(r, "offset", service.DefaultOffset, ve)
	limit = queryInt(r, "limit", service.DefaultLimit, ve)
	return offset, limit
}
