// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")

	// Неверная пара email/пароль. Одинаковая ошибка для
	// несуществующего email и неверного пароля — не палим, что именно не так.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// Токен невалиден/просрочен/subject не разрешился в пользователя.
	// Все причины схлопываются в одно сообщение.
	ErrUnauthorized = errors.New("could not validate credentials")
	// Заголовок Authorization отсутствует или сломан (это 403, не 401)
	ErrNotAuthenticated = errors.New("not authenticated")
	// Доступ к чужой машине
	ErrForbidden = errors.New("not enough permissions to access this car")
)

// Ресурс не найден (404, сообщение своё на каждую сущность)
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrBrandNotFound = errors.New("brand not found")
	ErrCarNotFound   = errors.New("car not found")
)

// Конфликты уникальности и ссылочные проверки (400)
var (
	ErrUsernameTaken  = errors.New("username already in use")
	ErrEmailTaken     = errors.New("email already in use")
	ErrBrandNameTaken = errors.New("brand name already in use")
	ErrPlateTaken     = errors.New("plate already in use")
	// Попытка удалить марку, на которую ссылаются машины
	ErrBrandHasCars = errors.New("cannot delete brand with associated cars")
	// brand_id в create/update машины не указывает на существующую марку.
	// Сообщение совпадает с 404 марки, но статус у него 400.
	ErrBrandRefNotFound = errors.New("brand not found")
)

// FieldError — ошибка валидации одного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError — набор полевых ошибок валидации входных данных.
// Возвращается сервисным слоем ДО какого-либо обращения к хранилищу
// и маппится на 422 в api слое.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError создаёт пустую ошибку валидации.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add добавляет полевую ошибку.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Empty — true, если ни одной полевой ошибки не накопилось.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// ErrOrNil возвращает саму ошибку или nil, если полевых ошибок нет.
// Возвращать надо именно error, иначе получится typed-nil и err != nil сработает.
func (e *ValidationError) ErrOrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation достаёт *ValidationError из цепочки ошибок.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
