package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rubyconworld/rbq-platform/pkg/utils"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
	EmailKey  ContextKey = "email"
	RoleKey   ContextKey = "role"
)

// AdminKeyHeader carries the admin console key on /api/admin routes.
const AdminKeyHeader = "X-Admin-Key"

type Middleware struct {
	jwtService   JWTServiceInterface
	hashService  HashServiceInterface
	adminKeyHash string
}

func NewMiddleware(jwtService JWTServiceInterface, hashService HashServiceInterface, adminKeyHash string) *Middleware {
	return &Middleware{
		jwtService:   jwtService,
		hashService:  hashService,
		adminKeyHash: adminKeyHash,
	}
}

// Authenticate validates the Bearer token issued by the auth service
// and stores the principal in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.Subject)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin compares the admin key header against the configured
// bcrypt hash. No hash configured means the admin console is disabled.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.adminKeyHash == "" {
			utils.RespondWithError(w, http.StatusForbidden, "Admin console disabled")
			return
		}
		key := r.Header.Get(AdminKeyHeader)
		if key == "" || !m.hashService.CompareKey(m.adminKeyHash, key) {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
