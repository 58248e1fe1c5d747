package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"crm-backend/internal/security"
)

func TestAuthMiddleware(t *testing.T) {
	tokens := security.NewTokenManager("unit-test-secret", 60, 60*24)

	var gotClaims *security.UserClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(tokens)(next)

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		refresh, err := tokens.GenerateRefreshToken(1, "admin@crm.local")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("AccessTokenAccepted", func(t *testing.T) {
		access, err := tokens.GenerateAccessToken(1, "admin@crm.local", "ADMIN")
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, gotClaims) {
			assert.Equal(t, int32(1), gotClaims.UserID)
			assert.Equal(t, "ADMIN", gotClaims.Role)
		}
	})
}
