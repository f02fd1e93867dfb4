package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users (admin only, defaulted pagination).
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Users per page (default 10)"
// @Success      200    {object}  paginatedUsersResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	page := domain.ParsePageDefaulted(c.QueryParam("page"), c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	if result.Users == nil {
		result.Users = []domain.User{}
	}
	return c.JSON(http.StatusOK, paginatedUsersResponse{
		Users: result.Users,
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}
