package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrPasswordPolicy, http.StatusBadRequest},
		{domain.ErrPasswordMismatch, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrAuthorNotFound, http.StatusNotFound},
		{domain.ErrBookNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
	}

	for _, tc := range cases {
		rec := runErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Fatalf("%v: expected error envelope, got %s", tc.err, rec.Body.String())
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	rec := runErrorHandler(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal details must not leak to the client: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
