package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/auth"
)

// ctxClaims extracts the identity claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing role or user
// id proves the middleware never ran, which is a routing bug and must be
// rejected, not treated as an anonymous request.
func ctxClaims(c echo.Context) (auth.Claims, error) {
	role, _ := c.Get("role").(string)
	userID, _ := c.Get("user_id").(int64)
	if role == "" || userID == 0 {
		return auth.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	return auth.Claims{UserID: userID, Username: username, Role: role}, nil
}
