package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
)

// Context keys under which the auth middleware stores the resolved claims.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRoles  = "roles"
)

// Auth verifies the bearer token and injects identity and role claims into the
// request context. Signature and expiry are both checked during parsing; any
// failure rejects the request with 401 before it reaches business logic.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, stringClaim(claims["sub"]))
			c.Set(ContextEmail, stringClaim(claims["email"]))
			c.Set(ContextRoles, roleClaims(claims["roles"]))

			return next(c)
		}
	}
}

func stringClaim(v any) string {
	s, _ := v.(string)
	return s
}

// roleClaims normalizes the roles claim, which decodes as []interface{}.
func roleClaims(v any) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
