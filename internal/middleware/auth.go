package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/macrotrack/macrotrack-console/internal/crypto"
)

type claimsCtxKey struct{}

// JWTAuth guards the mock backend's user routes. Requests without a valid
// bearer token get 401 with a detail message; accepted requests carry the
// token's claims, readable with ClaimsFromContext.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, detail := bearerToken(r)
			if detail != "" {
				writeJSONError(w, http.StatusUnauthorized, detail)
				return
			}

			claims, err := crypto.ValidateToken(raw, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsCtxKey{}, claims)))
		})
	}
}

// bearerToken extracts the token, or the detail to reject the request with.
func bearerToken(r *http.Request) (string, string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "Not authenticated"
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", "invalid authorization format"
	}
	return token, ""
}

func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	c, ok := ctx.Value(claimsCtxKey{}).(*crypto.Claims)
	return c, ok
}

// writeJSONError replies in the backend's {"detail": ...} shape.
func writeJSONError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
