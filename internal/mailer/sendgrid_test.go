package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/yolidayhq/yoliday/internal/config"
)

func newTestSendGrid(endpoint string) *SendGrid {
	s := NewSendGrid(config.MailConfig{
		SendGridAPIKey: "SG.test-key",
		FromAddress:    "noreply@yoliday.test",
		FromName:       "Yoliday",
	})
	s.endpoint = endpoint
	return s
}

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotPayload sgMailPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("invalid request payload: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := newTestSendGrid(srv.URL)
	err := s.Send(context.Background(), "ann@x.com", "Password Reset", "<p>hello</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer SG.test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if len(gotPayload.Personalizations) != 1 || len(gotPayload.Personalizations[0].To) != 1 {
		t.Fatalf("unexpected personalizations: %+v", gotPayload.Personalizations)
	}
	if gotPayload.Personalizations[0].To[0].Email != "ann@x.com" {
		t.Errorf("expected recipient ann@x.com, got %s", gotPayload.Personalizations[0].To[0].Email)
	}
	if gotPayload.From.Email != "noreply@yoliday.test" {
		t.Errorf("unexpected from address: %s", gotPayload.From.Email)
	}
	if gotPayload.Subject != "Password Reset" {
		t.Errorf("unexpected subject: %s", gotPayload.Subject)
	}
	if len(gotPayload.Content) != 1 || gotPayload.Content[0].Type != "text/html" {
		t.Errorf("expected one text/html content part, got %+v", gotPayload.Content)
	}
}

func TestSend_ProviderRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors":[{"message":"The provided authorization grant is invalid"}]}`))
	}))
	defer srv.Close()

	s := newTestSendGrid(srv.URL)
	err := s.Send(context.Background(), "ann@x.com", "Password Reset", "<p>hello</p>")
	if err == nil {
		t.Fatal("expected error for rejected send")
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected *ProviderError, got %T: %v", err, err)
	}
	if provErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", provErr.StatusCode)
	}
	if !strings.Contains(provErr.Body, "authorization grant") {
		t.Errorf("expected provider body to be captured, got %q", provErr.Body)
	}
}

func TestSend_MissingAPIKey(t *testing.T) {
	s := NewSendGrid(config.MailConfig{FromAddress: "noreply@yoliday.test"})
	if err := s.Send(context.Background(), "ann@x.com", "s", "b"); err == nil {
		t.Error("expected error when api key is not configured")
	}
}

func TestSend_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newTestSendGrid(srv.URL)
	if err := s.Send(ctx, "ann@x.com", "s", "b"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
