package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// HallHandler serves the /hall routes.
type HallHandler struct {
	Halls *service.HallService
}

func NewHallHandler(halls *service.HallService) *HallHandler {
	return &HallHandler{Halls: halls}
}

func (h *HallHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	halls, err := h.Halls.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, halls)
}

func (h *HallHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "hall_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given hall_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	hall, err := h.Halls.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrHallNotFound, "Hall not found")
	}
	return c.JSON(http.StatusOK, hall)
}

func (h *HallHandler) GetByAlias(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	hall, err := h.Halls.GetByAlias(ctx, c.Param("alias"))
	if err != nil {
		return serviceError(c, err, repository.ErrHallNotFound, "Hall not found")
	}
	return c.JSON(http.StatusOK, hall)
}

func (h *HallHandler) Create(c echo.Context) error {
	var in model.HallIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	hall, err := h.Halls.Create(ctx, model.HallBroker{HallIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, hall)
}

func (h *HallHandler) Update(c echo.Context) error {
	id, err := pathID(c, "hall_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given hall_id is invalid.")
	}
	var in model.HallIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	hall, err := h.Halls.Update(ctx, id, model.HallBroker{HallIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrHallNotFound, "Hall not found")
	}
	return c.JSON(http.StatusCreated, hall)
}

func (h *HallHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "hall_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given hall_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Halls.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Hall not found")
	}
	return c.NoContent(http.StatusNoContent)
}
