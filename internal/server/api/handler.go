// Package api реализует HTTP-слой сервера car-market.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - сериализацию моделей в публичные схемы ответов.
//
// Тело любой ошибки имеет вид {"detail": ...}: строка для простых ошибок,
// массив {field, message} для ошибок валидации (422).
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-car-market/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse формат ошибки валидации (422):
// detail — массив полевых ошибок.
type ValidationErrorResponse struct {
	Detail []serr.FieldError `json:"detail"`
}

// WriteJSON сериализует v в тело ответа со статусом status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{Detail: err.Error()})
}

// WriteValidationError пишет 422 со структурированным detail.
func WriteValidationError(w http.ResponseWriter, ve *serr.ValidationError) {
	WriteJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: ve.Fields})
}

// currentUser достаёт пользователя, положенного AuthMiddleware.
// Отсутствие пользователя на защищённом маршруте — дефект конфигурации
// роутера, отвечаем 401 как на невалидный токен.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return models.User{}, false
	}
	return user, true
}
