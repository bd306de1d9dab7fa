package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// UserHandler serves registration, login and recommendation routes.
type UserHandler struct {
	Users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// Register creates a regular account.  The optional authorization_code query
// parameter can bootstrap the first super_admin of a fresh deployment.
func (h *UserHandler) Register(c echo.Context) error {
	var in model.UserIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if in.Email == "" || in.Password == "" {
		return detail(c, http.StatusBadRequest, "E-mail and password are required")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.Register(ctx, in, c.QueryParam("authorization_code"))
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return detail(c, http.StatusBadRequest, "The user with provided e-mail already exists")
		}
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, u)
}

// RegisterAdmin creates an admin account.  The route is gated to
// super_admin by the router.
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	var in model.UserIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if in.Email == "" || in.Password == "" {
		return detail(c, http.StatusBadRequest, "E-mail and password are required")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.RegisterAdmin(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return detail(c, http.StatusBadRequest, "The user with provided e-mail already exists")
		}
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusCreated, u)
}

// Token exchanges credentials for a bearer access token.
func (h *UserHandler) Token(c echo.Context) error {
	var in model.UserIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tok, err := h.Users.Authenticate(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return detail(c, http.StatusUnauthorized, "Provided incorrect credentials")
		}
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, tok)
}

// RecommendedMovies lists movies of the user's favourite genre they have
// not reviewed yet.
func (h *UserHandler) RecommendedMovies(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given user_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Users.RecommendedMovies(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return detail(c, http.StatusBadRequest, "No movie recommendations, review some movies first.")
		}
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, movies)
}

// RecommendedGenre answers the genre the user rates highest.
func (h *UserHandler) RecommendedGenre(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given user_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	genre, err := h.Users.RecommendedGenre(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGenreNotFound) {
			return detail(c, http.StatusNotFound, "Cannot recommend genre, review some movies first.")
		}
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, echo.Map{"genre": genre})
}
