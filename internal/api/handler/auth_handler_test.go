package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/openfleet/garage-api/internal/core/domain"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, name, email, password string) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) error
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	return s.signupFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) error {
	return s.loginFn(ctx, email, password)
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			if name != "alice" || email != "a@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return &domain.User{Name: name, Email: email, PasswordHash: "$2a$10$digest"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/signup", `{"name":"alice","email":"a@example.com","password":"secret"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	// The stored record is returned as persisted: hash, not plaintext.
	if user["name"] != "alice" || user["password"] != "$2a$10$digest" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Signup_MissingField(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/signup", `{"name":"alice","email":"a@example.com"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "all fields required") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_UserExists(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/signup", `{"name":"bob","email":"b@example.com","password":"pw"}`)
	_ = h.Signup(c)

	// 400, not 409 — preserved contract.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "user already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Signup_InternalError(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/signup", `{"name":"bob","email":"b@example.com","password":"pw"}`)
	_ = h.Signup(c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["message"]; !ok {
		t.Fatalf("expected message-only payload, got %+v", resp)
	}
	// No token or session artifact is issued.
	if _, ok := resp["token"]; ok {
		t.Fatalf("login must not return a token")
	}
}

func TestAuthHandler_Login_MissingField(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/login", `{"email":"alice@example.com"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_EmailNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			return domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"pw"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			return domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"bad"}`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "incorrect password") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(t, http.MethodPost, "/login", `{`)
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
