package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// Audit records one event per authenticated request. It must run after Auth so
// the identity claims are present; anonymous requests are not recorded.
func Audit(recorder ports.AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			userID, _ := c.Get(ContextUserID).(string)
			if userID == "" {
				return err
			}

			email, _ := c.Get(ContextEmail).(string)
			roles, _ := c.Get(ContextRoles).([]string)

			recorder.Record(domain.AuditEvent{
				ID:        uuid.NewString(),
				Actor:     userID,
				Email:     email,
				Roles:     roles,
				Method:    c.Request().Method,
				Path:      c.Path(),
				Status:    responseStatus(c, err),
				Timestamp: time.Now().UTC(),
			})

			return err
		}
	}
}

// responseStatus resolves the status that will be written for this request.
// When the handler returned an error the response is not committed yet, so the
// status is derived from the error instead.
func responseStatus(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
