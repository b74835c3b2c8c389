package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
	"github.com/heartmarshall/ustwo-backend/pkg/ctxutil"
)

// GuildIDParam is the chi URL parameter that names the tenant.
const GuildIDParam = "guildID"

// Tenant resolves the {guildID} route parameter into a tenant id and stores
// it in the context. Requests with a malformed id are rejected with 400.
func Tenant() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := domain.ParseTenantID(chi.URLParam(r, GuildIDParam))
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithTenantID(r.Context(), id)))
		})
	}
}
