package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collecto-app/collecto-backend/internal/domain"
	"github.com/collecto-app/collecto-backend/internal/service/auth"
	"github.com/collecto-app/collecto-backend/pkg/ctxutil"
)

type mockAuthService struct {
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc       func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc        func(ctx context.Context) error
	ValidateTokenFunc func(ctx context.Context, token string) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, errors.New("not configured")
}

func (m *mockAuthService) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, input)
	}
	return nil, domain.ErrUnauthorized
}

func (m *mockAuthService) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, input)
	}
	return nil, domain.ErrUnauthorized
}

func (m *mockAuthService) Logout(ctx context.Context) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (int64, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(ctx, token)
	}
	return 0, domain.ErrUnauthorized
}

func newAuthHandler() (*AuthHandler, *mockAuthService) {
	svc := &mockAuthService{}
	return NewAuthHandler(svc, slog.Default()), svc
}

func sampleResult() *auth.AuthResult {
	return &auth.AuthResult{
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-opaque",
		User:         &domain.User{ID: 7, Email: "alice@example.com"},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()
	h, svc := newAuthHandler()

	svc.RegisterFunc = func(_ context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
		assert.Equal(t, "alice@example.com", input.Email)
		assert.Equal(t, "correct horse", input.Password)
		return sampleResult(), nil
	}

	body := `{"email":"alice@example.com","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "access-jwt", resp.AccessToken)
	assert.Equal(t, "refresh-opaque", resp.RefreshToken)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()
	h, svc := newAuthHandler()

	svc.RegisterFunc = func(_ context.Context, _ auth.RegisterInput) (*auth.AuthResult, error) {
		return nil, domain.ErrAlreadyExists
	}

	body := `{"email":"alice@example.com","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	t.Parallel()
	h, _ := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()
	h, svc := newAuthHandler()

	svc.LoginFunc = func(_ context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
		assert.Equal(t, "alice@example.com", input.Email)
		return sampleResult(), nil
	}

	body := `{"email":"alice@example.com","password":"correct horse"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	h, _ := newAuthHandler()

	body := `{"email":"alice@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Parallel()
	h, svc := newAuthHandler()

	svc.RefreshFunc = func(_ context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
		assert.Equal(t, "refresh-opaque", input.RefreshToken)
		return sampleResult(), nil
	}

	body := `{"refresh_token":"refresh-opaque"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Refresh_Expired(t *testing.T) {
	t.Parallel()
	h, _ := newAuthHandler()

	body := `{"refresh_token":"stale"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()
	h, svc := newAuthHandler()

	svc.ValidateTokenFunc = func(_ context.Context, token string) (int64, error) {
		assert.Equal(t, "access-jwt", token)
		return 7, nil
	}

	var logoutUserID int64
	svc.LogoutFunc = func(ctx context.Context) error {
		id, ok := ctxutil.UserIDFromCtx(ctx)
		require.True(t, ok)
		logoutUserID = id
		return nil
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer access-jwt")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), logoutUserID)
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	t.Parallel()
	h, _ := newAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
