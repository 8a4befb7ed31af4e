// HTTP-хендлеры выдачи и обновления access-токенов
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// TokenRequest описывает тело запроса выдачи токена.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse описывает успешный ответ выдачи токена.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token обрабатывает выдачу access-токена по email и паролю.
//
// Ответы:
//   - 200 OK: токен выдан;
//   - 400 Bad Request: неверный JSON;
//   - 401 Unauthorized: неверная пара email/пароль (одно сообщение на оба случая);
//   - 422 Unprocessable Entity: синтаксически невалидные входные данные;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Issue access token
// @Description  Authenticates by email/password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "Credentials"
// @Success      200 {object} TokenResponse
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Incorrect email or password"
// @Failure      422 {object} ValidationErrorResponse
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/token [post]
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.IssueByCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		if ve, ok := serr.AsValidation(err); ok {
			WriteValidationError(w, ve)
			return
		}
		switch {
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Errorw("token issue failed", "error", err)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

// RefreshToken перевыпускает access-токен для аутентифицированного пользователя.
//
// Личность подтверждена действующим bearer-токеном (middleware),
// тело запроса не требуется.
//
// Ответы:
//   - 200 OK: свежий токен;
//   - 401 Unauthorized: токен недействителен;
//   - 403 Forbidden: заголовок Authorization отсутствует или сломан;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Refresh access token
// @Description  Re-issues a bearer token for the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} TokenResponse
// @Failure      401 {object} ErrorResponse "Could not validate credentials"
// @Failure      403 {object} ErrorResponse "Not authenticated"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/refresh_token [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	user, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	token, err := h.Svc.Auth.IssueForUser(user.ID)
	if err != nil {
		h.Log.Logger.Sugar().Errorw("token refresh failed", "error", err, "user_id", user.ID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
