// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/estateflow/crm/internal/auth"
	"github.com/estateflow/crm/internal/authz"
	"github.com/estateflow/crm/internal/repository"
	"github.com/google/uuid"
)

type contextKey string

const principalKey = contextKey("crm_principal")

// Authenticate validates the bearer token and reloads the user row so the
// principal placed in the context carries the current role and account
// status, not the ones baked into the token at issue time.
func Authenticate(tokens *auth.TokenManager, users repository.UserRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondUnauthorized(w, "missing authorization header")
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondUnauthorized(w, "invalid authorization header")
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				respondUnauthorized(w, "invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				respondUnauthorized(w, "invalid token subject")
				return
			}

			user, err := users.FindByID(r.Context(), userID)
			if err != nil || !user.IsActive {
				respondUnauthorized(w, "account unavailable")
				return
			}

			principal := authz.Principal{ID: user.ID, Role: user.Role}
			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFrom returns the verified principal the auth middleware stored.
func PrincipalFrom(ctx context.Context) (authz.Principal, bool) {
	p, ok := ctx.Value(principalKey).(authz.Principal)
	return p, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
