package auth

import (
	"context"
	"net/http"
)

type contextKey string

const claimsContextKey = contextKey("claims")

// TokenVerifier — часть TokenService, нужная охраннику запросов
type TokenVerifier interface {
	Verify(tokenStr string) (*Claims, error)
}

// VerifyToken — шлюз аутентификации: достает токен из куки, проверяет
// и кладет claims в контекст запроса. Без куки или с невалидным
// токеном запрос обрывается с 401. Какой ресурс доступен — шлюз не
// решает, сверка владельца остается за обработчиком.
func VerifyToken(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized access", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext возвращает claims, положенные VerifyToken.
// Валидно только после прохождения шлюза.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsContextKey).(*Claims)
	return c, ok
}

// ContextWithClaims кладет claims в контекст. Для тестов обработчиков.
func ContextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, c)
}
