// Package router maps HTTP routes onto handlers and wires the auth gates.
//
// Read endpoints are public.  Mutating endpoints require a bearer token;
// catalogue mutations (movie, repertoire, showing, hall) additionally
// require an elevated role.  Ownership checks for reservations and reviews
// live in their handlers because they need the row.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/handler"
	"github.com/wiktorkow/cinemaapi/internal/middleware"
	"github.com/wiktorkow/cinemaapi/internal/model"
)

// Handlers bundles every handler the API mounts.
type Handlers struct {
	Users        *handler.UserHandler
	Movies       *handler.MovieHandler
	Reviews      *handler.ReviewHandler
	Repertoires  *handler.RepertoireHandler
	Showings     *handler.ShowingHandler
	Halls        *handler.HallHandler
	Reservations *handler.ReservationHandler
}

// Register mounts all routes on the Echo instance.
func Register(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	authed := middleware.JWTAuth(jwtSecret)
	elevated := middleware.RequireRole(model.ElevatedRoles...)
	superAdmin := middleware.RequireRole(model.RoleSuperAdmin)

	// Account routes live at the root, matching the public API shape.
	e.POST("/register", h.Users.Register)
	e.POST("/register_admin", h.Users.RegisterAdmin, authed, superAdmin)
	e.POST("/token", h.Users.Token)
	e.GET("/movie/uuid/:uuid", h.Users.RecommendedMovies, authed)
	e.GET("/genre/:uuid", h.Users.RecommendedGenre, authed)

	movie := e.Group("/movie")
	movie.GET("/all", h.Movies.GetAll)
	movie.GET("/title/:title", h.Movies.GetByTitle)
	movie.GET("/genre/:genre", h.Movies.GetByGenre)
	movie.GET("/age_restriction/:age", h.Movies.GetByAgeRestriction)
	movie.GET("/rating/:rating", h.Movies.GetByRating)
	movie.GET("/:movie_id", h.Movies.GetByID)
	movie.POST("/create", h.Movies.Create, authed, elevated)
	movie.PUT("/:movie_id", h.Movies.Update, authed, elevated)
	movie.DELETE("/:movie_id", h.Movies.Delete, authed, elevated)

	review := e.Group("/review")
	review.GET("/all", h.Reviews.GetAll)
	review.GET("/movie_id/:movie_id", h.Reviews.GetByMovie)
	review.GET("/movie_title/:title", h.Reviews.GetByMovieTitle)
	review.GET("/movie_title/:title/review_date/:date", h.Reviews.GetByMovieTitleAndDate)
	review.GET("/movie_title/:title/review_rating/:rating", h.Reviews.GetByMovieTitleAndRating)
	review.GET("/user_id/:user_id", h.Reviews.GetByUser)
	review.GET("/:review_id", h.Reviews.GetByID)
	review.POST("/create", h.Reviews.Create, authed)
	review.PUT("/:review_id", h.Reviews.Update, authed)
	review.DELETE("/:review_id", h.Reviews.Delete, authed, elevated)

	repertoire := e.Group("/repertoire")
	repertoire.GET("/all", h.Repertoires.GetAll)
	repertoire.GET("/:repertoire_id", h.Repertoires.GetByID)
	repertoire.POST("/create", h.Repertoires.Create, authed, elevated)
	repertoire.PUT("/:repertoire_id", h.Repertoires.Update, authed, elevated)
	repertoire.DELETE("/:repertoire_id", h.Repertoires.Delete, authed, elevated)

	showing := e.Group("/showing")
	showing.GET("/all", h.Showings.GetAll)
	showing.GET("/repertoire/repertoire_id/:repertoire_id", h.Showings.GetByRepertoire)
	showing.GET("/showing_date/:showing_date", h.Showings.GetByDate)
	showing.GET("/showing_time/:showing_time", h.Showings.GetByTime)
	showing.GET("/language_version/:language_ver", h.Showings.GetByLanguageVer)
	showing.GET("/movie/genre/:genre", h.Showings.GetByMovieGenre)
	showing.GET("/movie/title/:title", h.Showings.GetByMovieTitle)
	showing.GET("/movie/age_restriction/:age_restriction", h.Showings.GetByAgeRestriction)
	showing.GET("/:showing_id", h.Showings.GetByID)
	showing.POST("/create", h.Showings.Create, authed, elevated)
	showing.PUT("/:showing_id", h.Showings.Update, authed, elevated)
	showing.DELETE("/:showing_id", h.Showings.Delete, authed, elevated)

	hall := e.Group("/hall")
	hall.GET("/all", h.Halls.GetAll)
	hall.GET("/alias/:alias", h.Halls.GetByAlias)
	hall.GET("/:hall_id", h.Halls.GetByID)
	hall.POST("/create", h.Halls.Create, authed, elevated)
	hall.PUT("/:hall_id", h.Halls.Update, authed, elevated)
	hall.DELETE("/:hall_id", h.Halls.Delete, authed, elevated)

	reservation := e.Group("/reservation")
	reservation.GET("/all", h.Reservations.GetAll)
	reservation.GET("/movie/title/:title", h.Reservations.GetByMovieTitle)
	reservation.GET("/showing/showing_id/:showing_id", h.Reservations.GetByShowing)
	reservation.GET("/user_id/:user_id", h.Reservations.GetByUser)
	reservation.GET("/:reservation_id", h.Reservations.GetByID)
	reservation.POST("/create", h.Reservations.Create, authed)
	reservation.PUT("/:reservation_id", h.Reservations.Update, authed)
	reservation.DELETE("/:reservation_id", h.Reservations.Delete, authed, elevated)
}
