package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing_system/internal/domain"
	"listing_system/internal/middleware"
	"listing_system/internal/utils"
)

const testSecret = "test-jwt-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// adminRouter wires the middleware pair the way the admin routes do.
func adminRouter() *gin.Engine {
	r := gin.New()
	r.GET("/admin",
		middleware.JWTAuthMiddleware(testSecret),
		middleware.AdminOnlyMiddleware(),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"email": c.GetString(middleware.CtxEmail)})
		})
	return r
}

func signToken(t *testing.T, role string, expiresAt time.Time, secret string) string {
	t.Helper()
	claims := utils.Claims{
		Username: "alice",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthAndRoleGate(t *testing.T) {
	tests := []struct {
		name           string
		cookie         string
		expectedStatus int
	}{
		{
			name:           "no cookie",
			cookie:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			cookie:         "not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			cookie:         signToken(t, domain.RoleAdmin, time.Now().Add(-time.Minute), testSecret),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another secret",
			cookie:         signToken(t, domain.RoleAdmin, time.Now().Add(time.Hour), "other-secret"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "verified non-admin",
			cookie:         signToken(t, domain.RoleUser, time.Now().Add(time.Hour), testSecret),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "admin",
			cookie:         signToken(t, domain.RoleAdmin, time.Now().Add(time.Hour), testSecret),
			expectedStatus: http.StatusOK,
		},
	}

	r := adminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), "alice@example.com")
			}
		})
	}
}

// The role gate must fail closed when no identity context was attached,
// e.g. a misconfigured route that skips the auth middleware.
func TestAdminOnly_FailsClosedWithoutIdentity(t *testing.T) {
	r := gin.New()
	r.GET("/admin", middleware.AdminOnlyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
