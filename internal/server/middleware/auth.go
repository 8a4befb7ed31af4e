// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/IvanChernomyrdin/go-car-market/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-car-market/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// userKey — ключ контекста, под которым хранится аутентифицированный пользователь.
const userKey ctxKey = "user"

// UserLookup — доступ к хранилищу пользователей для резолва токена.
// Токен с валидной подписью, но несуществующим пользователем, не проходит.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
}

// JWTVerifier инкапсулирует проверку JWT access-токенов и резолв
// пользователя из claims.Subject.
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Users      UserLookup
}

// NewJWTVerifier создаёт новый JWTVerifier.
func NewJWTVerifier(signingKey string, users UserLookup) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Users: users}
}

// ContextWithUser кладёт пользователя в контекст под тем же ключом,
// что и AuthMiddleware. Используется самим middleware и тестами хендлеров.
func ContextWithUser(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFromContext извлекает аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - пользователя
//   - false, если AuthMiddleware не отработал
func UserFromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}

// AuthMiddleware возвращает HTTP middleware проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и срок жизни токена (только HS256)
//   - парсит claims.Subject как десятичный id пользователя
//   - резолвит пользователя из хранилища и кладёт его в context.Context
//
// Отсутствующий или некорректно оформленный заголовок — 403 "not
// authenticated". Любой дефект самого токена (подпись, срок, subject,
// несуществующий пользователь) схлопывается в один ответ 401 "could not
// validate credentials": клиенту не сообщается, что именно не так с токеном.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeDetail(w, http.StatusForbidden, serr.ErrNotAuthenticated.Error())
				return
			}

			claims := &jwt.RegisteredClaims{}

			parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
			_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				return []byte(v.SigningKey), nil
			})
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, serr.ErrUnauthorized.Error())
				return
			}

			userID, err := strconv.ParseInt(strings.TrimSpace(claims.Subject), 10, 64)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, serr.ErrUnauthorized.Error())
				return
			}

			user, err := v.Users.GetByID(r.Context(), userID)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, serr.ErrUnauthorized.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeDetail пишет JSON-ошибку в формате {"detail": "..."}.
// Локальная копия: middleware не может импортировать api (цикл импортов).
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
