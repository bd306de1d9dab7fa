package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// MovieHandler serves the /movie routes.
type MovieHandler struct {
	Movies *service.MovieService
}

func NewMovieHandler(movies *service.MovieService) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

func (h *MovieHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "movie_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given movie_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrMovieNotFound, "Movie not found")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) GetByTitle(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.GetByTitle(ctx, c.Param("title"))
	if err != nil {
		return serviceError(c, err, repository.ErrMovieNotFound, "Movie not found")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) GetByGenre(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.GetByGenre(ctx, c.Param("genre"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetByAgeRestriction(c echo.Context) error {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given age restriction is invalid")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.GetByAgeRestriction(ctx, age)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetByRating(c echo.Context) error {
	rating, err := strconv.ParseFloat(c.Param("rating"), 64)
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given rating is invalid")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.GetByRating(ctx, rating)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) Create(c echo.Context) error {
	var in model.MovieIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Create(ctx, model.MovieBroker{MovieIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MovieHandler) Update(c echo.Context) error {
	id, err := pathID(c, "movie_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given movie_id is invalid.")
	}
	var in model.MovieIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Movies.Update(ctx, id, model.MovieBroker{MovieIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrMovieNotFound, "Movie not found")
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "movie_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given movie_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Movies.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Movie not found")
	}
	return c.NoContent(http.StatusNoContent)
}
