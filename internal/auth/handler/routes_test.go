package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablozoani/gl-exercise/internal/auth/domain"
	"github.com/pablozoani/gl-exercise/internal/auth/dto"
	"github.com/pablozoani/gl-exercise/internal/auth/handler"
	"github.com/pablozoani/gl-exercise/internal/auth/service"
	"github.com/pablozoani/gl-exercise/internal/mocks"
)

// newTestApp wires the routes with a real token service so middleware and
// handlers see real signed tokens; only the repository is mocked.
func newTestApp(t *testing.T) (*fiber.App, *mocks.MockUserRepository, *service.TokenService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	tokenService := service.NewTokenService("test-secret-key-123", 3600)
	userService := service.NewUserService(mockRepo, tokenService, 0)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, tokenService)

	return app, mockRepo, tokenService
}

func TestLoginAuthorization(t *testing.T) {
	t.Run("missing authorization header", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("header without bearer prefix", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Authorization", "BearerInvalidToken") // No space
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("malformed token", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		envelope := decodeErrorResponse(t, resp.Body)
		require.Len(t, envelope.Error, 1)
		assert.Equal(t, http.StatusForbidden, envelope.Error[0].Code)
	})

	t.Run("expired token", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		expired := service.NewTokenService("test-secret-key-123", -1)
		token, err := expired.Issue(&domain.User{ID: "user-123", Email: "a@b.com"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("valid token for an unregistered email", func(t *testing.T) {
		app, mockRepo, tokenService := newTestApp(t)

		token, err := tokenService.Issue(&domain.User{ID: "user-123", Email: "ghost@b.com"})
		require.NoError(t, err)

		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@b.com").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		envelope := decodeErrorResponse(t, resp.Body)
		require.Len(t, envelope.Error, 1)
		assert.Contains(t, envelope.Error[0].Detail, "not found")
	})
}

// TestSignUpThenLogin drives the whole surface: sign-up issues a token whose
// subject is the email, and that token authorizes the login call.
func TestSignUpThenLogin(t *testing.T) {
	app, mockRepo, tokenService := newTestApp(t)

	var created *domain.User
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, u *domain.User) error {
			created = u
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/sign-up", bytes.NewReader(signUpBody()))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var signUp dto.SignUpResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signUp))
	require.NotEmpty(t, signUp.Token)

	claims, err := tokenService.Verify(signUp.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Subject)

	// Login with the sign-up token against the stored record.
	mockRepo.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(created, nil)
	mockRepo.EXPECT().UpdateLastLogin(gomock.Any(), created.ID, gomock.Any()).Return(nil)

	loginReq := httptest.NewRequest(http.MethodGet, "/login", nil)
	loginReq.Header.Set("Authorization", "Bearer "+signUp.Token)

	loginResp, err := app.Test(loginReq)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)

	var login dto.LoginResponse
	require.NoError(t, json.NewDecoder(loginResp.Body).Decode(&login))
	assert.Equal(t, signUp.ID, login.ID)
	assert.Equal(t, "a@b.com", login.Email)
	assert.Empty(t, login.Password)
	assert.Len(t, login.Phones, 1)

	signUpLastLogin, err := time.Parse(dto.TimestampLayout, signUp.LastLogin)
	require.NoError(t, err)
	loginLastLogin, err := time.Parse(dto.TimestampLayout, login.LastLogin)
	require.NoError(t, err)
	assert.False(t, loginLastLogin.Before(signUpLastLogin))
}

func TestRegisterRoutes(t *testing.T) {
	app, _, _ := newTestApp(t)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/sign-up"},
		{http.MethodGet, "/login"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+"_"+tc.path+"_exists", func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
