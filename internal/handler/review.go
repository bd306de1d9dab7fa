package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// ReviewHandler serves the /review routes.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

func (h *ReviewHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "review_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given review_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rv, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrReviewNotFound, "Review not found")
	}
	return c.JSON(http.StatusOK, rv)
}

func (h *ReviewHandler) GetByMovie(c echo.Context) error {
	movieID, err := pathID(c, "movie_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given movie_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetByMovie(ctx, movieID)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByMovieTitle(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetByMovieTitle(ctx, c.Param("title"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByMovieTitleAndDate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetByMovieTitleAndDate(ctx, c.Param("title"), c.Param("date"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByMovieTitleAndRating(c echo.Context) error {
	rating, err := strconv.Atoi(c.Param("rating"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given rating is invalid. Valid range is: 1-5")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetByMovieTitleAndRating(ctx, c.Param("title"), rating)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given user_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reviews, err := h.Reviews.GetByUser(ctx, userID)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var in model.ReviewIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rv, err := h.Reviews.Create(ctx, model.ReviewBroker{ReviewIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, rv)
}

// Update replaces a review.  Only the review's author or an elevated role
// may do so.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := pathID(c, "review_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given review_id is invalid.")
	}
	var in model.ReviewIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, role, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	existing, err := h.Reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return detail(c, http.StatusNotFound, "Review not found")
		}
		return serviceError(c, err, nil, "")
	}
	if existing.UserID != userID && !model.IsElevated(role) {
		return unauthorized(c)
	}

	rv, err := h.Reviews.Update(ctx, id, model.ReviewBroker{ReviewIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrReviewNotFound, "Review not found")
	}
	return c.JSON(http.StatusCreated, rv)
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "review_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given review_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Reviews.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Review not found")
	}
	return c.NoContent(http.StatusNoContent)
}
