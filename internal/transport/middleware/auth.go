package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/batch-dashboard/internal/auth"
	"github.com/heartmarshall/batch-dashboard/pkg/ctxutil"
)

// TokenValidator resolves a bearer token to the identity it was issued for.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth rejects requests without a valid bearer token: 401 when the token is
// missing, 403 when it is invalid or expired. Accepted requests carry the
// user ID and email in their context.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "Access token required")
				return
			}

			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeMessage(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
				info.userID = identity.UserID
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.UserID)
			ctx = ctxutil.WithUserEmail(ctx, identity.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
