// Package http реализует маршрутизацию HTTP-слоя сервера car-market.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/api"
	"github.com/IvanChernomyrdin/go-car-market/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware request-id и логирования для всех запросов;
//   - публичные эндпоинты: выдача токена, регистрация, чтение пользователей;
//   - группу защищённых JWT эндпоинтов: refresh, мутации пользователей,
//     марки и машины.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware())
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Post("/auth/token", h.Token)
	r.Post("/users", h.CreateUser)
	r.Get("/users", h.ListUsers)
	r.Get("/users/{id}", h.GetUser)

	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())

		r.Post("/auth/refresh_token", h.RefreshToken)

		// мутации пользователей: достаточно любого валидного токена
		r.Put("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)

		r.Route("/brands", func(r chi.Router) {
			r.Post("/", h.CreateBrand)
			r.Get("/", h.ListBrands)
			r.Get("/{id}", h.GetBrand)
			r.Put("/{id}", h.UpdateBrand)
			r.Delete("/{id}", h.DeleteBrand)
		})

		r.Route("/cars", func(r chi.Router) {
			r.Post("/", h.CreateCar)
			r.Get("/", h.ListCars)
			r.Get("/{id}", h.GetCar)
			r.Put("/{id}", h.UpdateCar)
			r.Delete("/{id}", h.DeleteCar)
		})
	})

	return r
}
