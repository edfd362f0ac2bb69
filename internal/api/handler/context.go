package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/middleware"
)

// ctxIdentity extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty user id proves the
// middleware ran on this route.
func ctxIdentity(c echo.Context) (userID, email string, roles []string, err error) {
	userID, _ = c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", "", nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get(middleware.ContextEmail).(string)
	roles, _ = c.Get(middleware.ContextRoles).([]string)
	return userID, email, roles, nil
}
