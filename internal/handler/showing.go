package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// ShowingHandler serves the /showing routes.
type ShowingHandler struct {
	Showings *service.ShowingService
}

func NewShowingHandler(showings *service.ShowingService) *ShowingHandler {
	return &ShowingHandler{Showings: showings}
}

func (h *ShowingHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "showing_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given showing_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sh, err := h.Showings.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrShowingNotFound, "Showing not found")
	}
	return c.JSON(http.StatusOK, sh)
}

func (h *ShowingHandler) GetByRepertoire(c echo.Context) error {
	repertoireID, err := pathID(c, "repertoire_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given repertoire_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByRepertoire(ctx, repertoireID)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByDate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByDate(ctx, c.Param("showing_date"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByTime(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByTime(ctx, c.Param("showing_time"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByLanguageVer(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByLanguageVer(ctx, c.Param("language_ver"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByMovieGenre(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByMovieGenre(ctx, c.Param("genre"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByMovieTitle(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByMovieTitle(ctx, c.Param("title"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) GetByAgeRestriction(c echo.Context) error {
	age, err := strconv.Atoi(c.Param("age_restriction"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given age restriction is invalid")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	showings, err := h.Showings.GetByAgeRestriction(ctx, age)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, showings)
}

func (h *ShowingHandler) Create(c echo.Context) error {
	var in model.ShowingIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sh, err := h.Showings.Create(ctx, model.ShowingBroker{ShowingIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, sh)
}

func (h *ShowingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "showing_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given showing_id is invalid.")
	}
	var in model.ShowingIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sh, err := h.Showings.Update(ctx, id, model.ShowingBroker{ShowingIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrShowingNotFound, "Showing not found")
	}
	return c.JSON(http.StatusCreated, sh)
}

func (h *ShowingHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "showing_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given showing_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Showings.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Showing not found")
	}
	return c.NoContent(http.StatusNoContent)
}
