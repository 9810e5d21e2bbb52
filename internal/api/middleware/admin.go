package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/curbside-pickup/internal/api/handlers"
)

// AdminKeyHeader заголовок с ключом персонала
const AdminKeyHeader = "X-Admin-Key"

const msgInvalidAdminKey = "Invalid or missing admin key"

// AdminKey проверяет заголовок X-Admin-Key. С пустым ключом проверка выключена.
func AdminKey(key string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				handlers.RespondUnauthorized(w, msgInvalidAdminKey)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
