package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

type stubAuthService struct {
	registerCalls int
	loginCalls    int
	registerErr   error
	loginErr      error
	token         string
	user          *domain.User
}

func (s *stubAuthService) Register(_ context.Context, email, password string) (*domain.User, error) {
	s.registerCalls++
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: "user-1", Email: email, Roles: []string{domain.RoleCustomer}}, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	s.loginCalls++
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.token, s.user, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{token: "signed-token", user: &domain.User{ID: "user-1"}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"emailAddress":"admin@bookstore.com","password":"P@ssw0rd1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"token":"signed-token"`) {
		t.Fatalf("expected token in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"emailAddress":"admin@bookstore.com","password":"wrong-pass"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_UnknownUserMapsTo401(t *testing.T) {
	// Unknown email must be indistinguishable from a wrong password.
	svc := &stubAuthService{loginErr: domain.ErrUserNotFound}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"emailAddress":"ghost@bookstore.com","password":"P@ssw0rd1"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login_MalformedEmail(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"emailAddress":"not-an-email","password":"P@ssw0rd1"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if svc.loginCalls != 0 {
		t.Fatalf("service must not be called on validation failure")
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/register", `{"emailAddress":"new@bookstore.com","password":"P@ssw0rd1","confirmPassword":"P@ssw0rd1"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"emailAddress":"new@bookstore.com","password":"abc","confirmPassword":"abc"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if svc.registerCalls != 0 {
		t.Fatalf("policy violation must be rejected before any persistence attempt")
	}
}

func TestAuthHandler_Register_ConfirmMismatch(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"emailAddress":"new@bookstore.com","password":"P@ssw0rd1","confirmPassword":"P@ssw0rd2"}`)
	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
	if svc.registerCalls != 0 {
		t.Fatalf("confirmation mismatch must be rejected before any persistence attempt")
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	// The central error handler maps ErrUserExists to 409.
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	h := NewAuthHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/register", `{"emailAddress":"dup@bookstore.com","password":"P@ssw0rd1","confirmPassword":"P@ssw0rd1"}`)
	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists propagated, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/me", "")
	c.Set(middleware.ContextUserID, "user-1")
	c.Set(middleware.ContextEmail, "admin@bookstore.com")
	c.Set(middleware.ContextRoles, []string{domain.RoleAdministrator})

	if err := h.Me(c); err != nil {
		t.Fatalf("me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.RoleAdministrator) {
		t.Fatalf("expected roles in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodGet, "/api/me", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
