package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey — ключ контекста, под которым хранится id запроса.
const requestIDKey ctxKey = "request_id"

// RequestIDHeader — заголовок, в котором id запроса приходит от клиента
// и возвращается в ответе.
const RequestIDHeader = "X-Request-Id"

// RequestIDFromContext извлекает id запроса из контекста.
// Возвращает пустую строку, если RequestIDMiddleware не отработал.
func RequestIDFromContext(ctx context.Context) string {
	s, _ := ctx.Value(requestIDKey).(string)
	return s
}

// RequestIDMiddleware присваивает каждому запросу id.
//
// Если клиент прислал X-Request-Id, используется он (сквозная трассировка
// через агента), иначе генерируется новый UUID. Id кладётся в контекст
// и дублируется в заголовок ответа.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
