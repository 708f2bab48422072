package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRequireAuth_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID string
	handler := RequireAuth(issuer)(func(c echo.Context) error {
		gotUserID = GetUserID(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUserID != "user-123" {
		t.Errorf("expected user-123 in context, got %q", gotUserID)
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	forged, err := NewTokenIssuer("other-secret", time.Hour).Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	expired, err := NewTokenIssuer("test-secret", -time.Minute).Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"forged signature", "Bearer " + forged},
		{"expired token", "Bearer " + expired},
	}

	e := echo.New()
	handler := RequireAuth(issuer)(func(c echo.Context) error {
		t.Error("handler should not be reached")
		return nil
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			assertAppError(t, handler(c), 401)
		})
	}
}

func TestRequireAuth_CaseInsensitiveScheme(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequireAuth(issuer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("expected lower-case scheme to be accepted, got: %v", err)
	}
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if id := GetUserID(c); id != "" {
		t.Errorf("expected empty user id, got %q", id)
	}
}
