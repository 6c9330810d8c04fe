package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/api/middleware"
	"github.com/casavia/realty-system/internal/core/domain"
)

// ctxIdentity returns the identity the authentication gate resolved for this
// request. Routes behind RequireAuth always see a non-anonymous identity;
// public routes may see domain.Anonymous, which the services reject where it
// matters.
func ctxIdentity(c echo.Context) domain.Identity {
	return middleware.Identity(c)
}
