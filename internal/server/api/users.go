// HTTP-хендлеры пользователей
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

// CreateUserRequest описывает тело запроса регистрации пользователя.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest — частичное обновление пользователя.
// Отсутствующее поле не трогается; пароль, если передан, перехэшируется.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserResponse — публичное представление пользователя (без хэша пароля).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse — страница пользователей с параметрами пагинации.
type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserListResponse(users []models.User, offset, limit int) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return UserListResponse{Users: out, Offset: offset, Limit: limit}
}

// CreateUser обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: пользователь создан;
//   - 400 Bad Request: неверный JSON или занятый username/email
//     (username проверяется первым);
//   - 422 Unprocessable Entity: невалидные поля;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "New user"
// @Success      201 {object} UserResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or username/email already in use"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Users.Create(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		switch {
		case errors.Is(err, serr.ErrUsernameTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrUsernameTaken)
		case errors.Is(err, serr.ErrEmailTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrEmailTaken)
		default:
			h.Log.Logger.Sugar().Errorw("create user failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// ListUsers возвращает страницу пользователей.
//
// Query-параметры: offset (>=0), limit (1..100), search — подстрока
// username ИЛИ email без учёта регистра.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        offset query int false "Records to skip" default(0)
// @Param        limit query int false "Page size" default(100)
// @Param        search query string false "Substring of username or email"
// @Success      200 {object} UserListResponse
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ve := serr.NewValidationError()
	offset, limit := pagination(r, ve)
	if err := ve.ErrOrNil(); err != nil {
		WriteValidationError(w, ve)
		return
	}

	users, err := h.Svc.Users.List(r.Context(), service.UserFilter{
		Search: r.URL.Query().Get("search"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		h.Log.Logger.Sugar().Errorw("list users failed", "error", err)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, toUserListResponse(users, offset, limit))
}

// GetUser возвращает пользователя по id.
//
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id path int true "User id"
// @Success      200 {object} UserResponse
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// UpdateUser частично обновляет пользователя.
//
// Достаточно любого валидного токена, совпадение id вызывающего
// с обновляемым не требуется.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200 {object} UserResponse
// @Failure      400 {object} ErrorResponse "Bad JSON or username/email already in use"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	user, err := h.Svc.Users.Update(r.Context(), id, service.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		case errors.Is(err, serr.ErrUsernameTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrUsernameTaken)
		case errors.Is(err, serr.ErrEmailTaken):
			WriteError(w, http.StatusBadRequest, serr.ErrEmailTaken)
		default:
			h.Log.Logger.Sugar().Errorw("update user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// DeleteUser удаляет пользователя по id.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id path int true "User id"
// @Success      204 "No Content"
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, serr.ErrUserNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("delete user failed", "error", err, "id", id)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
