package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crm-backend/internal/domain"
	"crm-backend/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	var user *domain.User
	if args.Get(2) != nil {
		user = args.Get(2).(*domain.User)
	}
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *mockAuthService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.String(1), args.Error(2)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(mockAuthService)
		handler := NewAuthHandler(svc)
		svc.On("Login", mock.Anything, "admin@crm.local", "s3cret").
			Return("access-token", "refresh-token", &domain.User{ID: 1, Email: "admin@crm.local"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"admin@crm.local","password":"s3cret"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "access-token", body["access_token"])
		assert.Equal(t, "refresh-token", body["refresh_token"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		handler := NewAuthHandler(new(mockAuthService))

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("BadCredentials", func(t *testing.T) {
		svc := new(mockAuthService)
		handler := NewAuthHandler(svc)
		svc.On("Login", mock.Anything, "admin@crm.local", "wrong").
			Return("", "", nil, service.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"admin@crm.local","password":"wrong"}`))
		rec := httptest.NewRecorder()
		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(mockAuthService)
		handler := NewAuthHandler(svc)
		svc.On("RefreshToken", mock.Anything, "old-refresh").Return("new-access", "new-refresh", nil)

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh",
			strings.NewReader(`{"refresh_token":"old-refresh"}`))
		rec := httptest.NewRecorder()
		handler.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingToken", func(t *testing.T) {
		handler := NewAuthHandler(new(mockAuthService))

		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		handler.Refresh(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
