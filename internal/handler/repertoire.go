package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// RepertoireHandler serves the /repertoire routes.
type RepertoireHandler struct {
	Repertoires *service.RepertoireService
}

func NewRepertoireHandler(repertoires *service.RepertoireService) *RepertoireHandler {
	return &RepertoireHandler{Repertoires: repertoires}
}

func (h *RepertoireHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	repertoires, err := h.Repertoires.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, repertoires)
}

func (h *RepertoireHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "repertoire_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given repertoire_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rp, err := h.Repertoires.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrRepertoireNotFound, "Repertoire not found")
	}
	return c.JSON(http.StatusOK, rp)
}

func (h *RepertoireHandler) Create(c echo.Context) error {
	var in model.RepertoireIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rp, err := h.Repertoires.Create(ctx, model.RepertoireBroker{RepertoireIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, rp)
}

func (h *RepertoireHandler) Update(c echo.Context) error {
	id, err := pathID(c, "repertoire_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given repertoire_id is invalid.")
	}
	var in model.RepertoireIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rp, err := h.Repertoires.Update(ctx, id, model.RepertoireBroker{RepertoireIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrRepertoireNotFound, "Repertoire not found")
	}
	return c.JSON(http.StatusCreated, rp)
}

func (h *RepertoireHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "repertoire_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given repertoire_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Repertoires.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Repertoire not found")
	}
	return c.NoContent(http.StatusNoContent)
}
