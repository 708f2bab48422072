package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

// mockAuthService implements AuthService for handler tests.
type mockAuthService struct {
	registerFn       func(ctx context.Context, req RegisterRequest) (*User, string, error)
	loginFn          func(ctx context.Context, req LoginRequest) (*User, string, error)
	forgotPasswordFn func(ctx context.Context, email string) error
	resetPasswordFn  func(ctx context.Context, token, newPassword string) (*User, string, error)
}

func (m *mockAuthService) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.forgotPasswordFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, token, newPassword string) (*User, string, error) {
	return m.resetPasswordFn(ctx, token, newPassword)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func TestHandlerRegister_Success(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, req RegisterRequest) (*User, string, error) {
			return &User{ID: "user-123", Name: req.Name, Email: req.Email}, "session-token", nil
		},
	}

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/register",
		`{"name": "Ann", "email": "ann@x.com", "password": "secret1"}`)
	c := e.NewContext(req, rec)

	if err := NewHandler(svc).Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Token != "session-token" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if resp.User.ID != "user-123" {
		t.Error("expected user in response")
	}

	// The password hash must never appear in the response body.
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("response leaks password material: %s", rec.Body.String())
	}
}

func TestHandlerRegister_MissingFields(t *testing.T) {
	svc := &mockAuthService{
		registerFn: func(ctx context.Context, req RegisterRequest) (*User, string, error) {
			t.Error("service should not be called for incomplete requests")
			return nil, "", nil
		},
	}

	bodies := []string{
		`{}`,
		`{"name": "Ann"}`,
		`{"name": "Ann", "email": "ann@x.com"}`,
		`{"email": "ann@x.com", "password": "secret1"}`,
	}

	e := echo.New()
	for _, body := range bodies {
		req, rec := jsonRequest(http.MethodPost, "/register", body)
		c := e.NewContext(req, rec)
		assertAppError(t, NewHandler(svc).Register(c), 400)
	}
}

func TestHandlerLogin_MissingFields(t *testing.T) {
	svc := &mockAuthService{
		loginFn: func(ctx context.Context, req LoginRequest) (*User, string, error) {
			t.Error("service should not be called for incomplete requests")
			return nil, "", nil
		},
	}

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/login", `{"email": "ann@x.com"}`)
	c := e.NewContext(req, rec)
	assertAppError(t, NewHandler(svc).Login(c), 400)
}

func TestHandlerForgotPassword_GenericMessage(t *testing.T) {
	svc := &mockAuthService{
		forgotPasswordFn: func(ctx context.Context, email string) error {
			return nil
		},
	}

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/forgot-password", `{"email": "nobody@x.com"}`)
	c := e.NewContext(req, rec)

	if err := NewHandler(svc).ForgotPassword(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "If an account with that email exists") {
		t.Errorf("expected generic message, got: %s", rec.Body.String())
	}
}

func TestHandlerResetPassword_TokenFromPath(t *testing.T) {
	var gotToken string
	svc := &mockAuthService{
		resetPasswordFn: func(ctx context.Context, token, newPassword string) (*User, string, error) {
			gotToken = token
			return &User{ID: "user-123", Name: "Ann", Email: "ann@x.com"}, "fresh-token", nil
		},
	}

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/reset-password/abc123", `{"password": "new-password"}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("abc123")

	if err := NewHandler(svc).ResetPassword(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotToken != "abc123" {
		t.Errorf("expected token abc123 from path, got %q", gotToken)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestHandlerResetPassword_MissingPassword(t *testing.T) {
	svc := &mockAuthService{
		resetPasswordFn: func(ctx context.Context, token, newPassword string) (*User, string, error) {
			t.Error("service should not be called without a password")
			return nil, "", nil
		},
	}

	e := echo.New()
	req, rec := jsonRequest(http.MethodPost, "/reset-password/abc123", `{}`)
	c := e.NewContext(req, rec)
	c.SetParamNames("token")
	c.SetParamValues("abc123")

	assertAppError(t, NewHandler(svc).ResetPassword(c), 400)
}
