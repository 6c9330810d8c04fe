package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/core/domain"
)

// RequireAuth rejects anonymous requests. Returns the domain error so the
// central error handler renders the 401.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Identity(c).IsAnonymous() {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRole rejects requests whose identity carries none of the given
// roles. Anonymous requests get 401, authenticated but wrong-role get 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := Identity(c)
			if id.IsAnonymous() {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[id.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
