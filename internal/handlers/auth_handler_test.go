package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobhunt_backend/internal/middleware"
	"jobhunt_backend/internal/services"
	"jobhunt_backend/internal/services/dto"
	"jobhunt_backend/internal/validator"
	"jobhunt_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubAuthService returns canned results so handler tests exercise only
// binding, status codes and body shapes.
type stubAuthService struct {
	registerResp *dto.AuthResponse
	registerErr  error
	loginResp    *dto.AuthResponse
	loginErr     error
	refreshResp  *dto.AuthResponse
	refreshErr   error
	logoutErr    error
	available    bool
	verifyErr    error
	forgotErr    error
	resetErr     error
}

func (s *stubAuthService) Register(_ *gorm.DB, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return s.registerResp, s.registerErr
}
func (s *stubAuthService) Login(_ *gorm.DB, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.loginResp, s.loginErr
}
func (s *stubAuthService) Refresh(_ *gorm.DB, _ *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	return s.refreshResp, s.refreshErr
}
func (s *stubAuthService) Logout(_ *gorm.DB, _ string) error { return s.logoutErr }
func (s *stubAuthService) ValidateEmail(_ *gorm.DB, _ string) (bool, error) {
	return s.available, nil
}
func (s *stubAuthService) VerifyEmail(_ *gorm.DB, _ string) error           { return s.verifyErr }
func (s *stubAuthService) InitiatePasswordReset(_ *gorm.DB, _ string) error { return s.forgotErr }
func (s *stubAuthService) ResetPassword(_ *gorm.DB, _, _ string) error      { return s.resetErr }

func newAuthTestRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	handler := NewAuthHandler(NewBaseHandler(validator.New()), svc)
	api := router.Group("/api")
	handler.RegisterRoutes(api)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Success(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{
		registerResp: &dto.AuthResponse{
			AccessToken:  "access",
			RefreshToken: "refresh",
			User:         dto.UserDTO{ID: "u1", Email: "ada@example.com"},
		},
	})

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"email":      "ada@example.com",
		"password":   "super_password123",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"access"`)
	assert.Contains(t, w.Body.String(), `"refresh_token":"refresh"`)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestRegisterEndpoint_InvalidBody(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{})

	// Password too short, email malformed.
	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{
		registerErr: apperrors.ErrEmailAlreadyExists,
	})

	w := postJSON(t, router, "/api/auth/register", map[string]string{
		"email":      "ada@example.com",
		"password":   "super_password123",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{
		loginErr: apperrors.ErrInvalidCredentials,
	})

	w := postJSON(t, router, "/api/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong_password",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestValidateEmailEndpoint_BareBoolean(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{available: true})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate-email?email=ada%40example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())
}

func TestValidateEmailEndpoint_MissingEmail(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/validate-email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyEmailEndpoint_QueryToken(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-email?token=abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verified successfully")
}

func TestVerifyEmailEndpoint_ExpiredToken(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{
		verifyErr: apperrors.ErrVerificationTokenExpired,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify-email?token=abc123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Verification token has expired")
}

func TestForgotPasswordEndpoint_UnknownEmail(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{
		forgotErr: apperrors.ErrUserNotFound,
	})

	w := postJSON(t, router, "/api/auth/forgot-password", map[string]string{
		"email": "nobody@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestResetPasswordEndpoint_Success(t *testing.T) {
	t.Parallel()
	router := newAuthTestRouter(&stubAuthService{})

	w := postJSON(t, router, "/api/auth/reset-password", map[string]string{
		"token":        "reset-token",
		"new_password": "brand_new_password",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password has been reset")
}
