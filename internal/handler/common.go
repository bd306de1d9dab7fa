package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/middleware"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// dbTimeout bounds every service call made from a handler.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// identity reads the authenticated subject and role stored by the JWT
// middleware.  A malformed subject means the token was issued outside this
// service, which is treated the same as no token at all.
func identity(c echo.Context) (uuid.UUID, string, error) {
	raw, _ := c.Get(middleware.CtxUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", err
	}
	role, _ := c.Get(middleware.CtxRole).(string)
	return id, role, nil
}

func detail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"detail": msg})
}

func unauthorized(c echo.Context) error {
	return detail(c, http.StatusForbidden, "Unauthorized")
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

// serviceError maps a service failure onto the API error contract:
// validation outcomes answer 400 with their message, the entity's
// not-found sentinel answers 404, anything else is a 500.
func serviceError(c echo.Context, err error, notFound error, notFoundMsg string) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return detail(c, http.StatusBadRequest, verr.Message)
	}
	if notFound != nil && errors.Is(err, notFound) {
		return detail(c, http.StatusNotFound, notFoundMsg)
	}
	return detail(c, http.StatusInternalServerError, "Internal server error")
}
