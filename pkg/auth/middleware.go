package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/avelarde/recargas/pkg/utils"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "userID"
	WorkGroupKey ContextKey = "workGroup"
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		jwtService := &JWTService{}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, WorkGroupKey, claims.WorkGroup)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGroup gates a subtree to members of one work group. It must run
// after AuthMiddleware.
func RequireGroup(group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ := r.Context().Value(WorkGroupKey).(string)
			if got != group {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
