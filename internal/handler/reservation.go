package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/queue"
	"github.com/wiktorkow/cinemaapi/internal/repository"
	"github.com/wiktorkow/cinemaapi/internal/service"
)

// ReservationHandler serves the /reservation routes.
type ReservationHandler struct {
	Reservations *service.ReservationService
	// PublishEvent is called after a reservation is created.  Swappable in
	// tests; nil disables publishing.
	PublishEvent func(context.Context, queue.ReservationConfirmedEvent) error
}

func NewReservationHandler(reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		Reservations: reservations,
		PublishEvent: queue.PublishReservationConfirmed,
	}
}

func (h *ReservationHandler) GetAll(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.GetAll(ctx)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByID(c echo.Context) error {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given reservation_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rs, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		return serviceError(c, err, repository.ErrReservationNotFound, "Reservation not found")
	}
	return c.JSON(http.StatusOK, rs)
}

func (h *ReservationHandler) GetByMovieTitle(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.GetByMovieTitle(ctx, c.Param("title"))
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByShowing(c echo.Context) error {
	showingID, err := pathID(c, "showing_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given showing_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.GetByShowing(ctx, showingID)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *ReservationHandler) GetByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given user_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	reservations, err := h.Reservations.GetByUser(ctx, userID)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	return c.JSON(http.StatusOK, reservations)
}

// Create books a seat for the authenticated user.  A confirmed booking is
// announced on the broker; a broker outage never fails the request.
func (h *ReservationHandler) Create(c echo.Context) error {
	var in model.ReservationIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, _, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	rs, err := h.Reservations.Create(ctx, model.ReservationBroker{ReservationIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, nil, "")
	}

	if h.PublishEvent != nil {
		ev := queue.ReservationConfirmedEvent{
			ReservationID: rs.ID,
			UserID:        rs.UserID.String(),
			ShowingID:     rs.ShowingID,
			SeatRow:       rs.SeatRow,
			SeatNum:       rs.SeatNum,
			ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			pctx, pcancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pcancel()
			_ = h.PublishEvent(pctx, ev)
		}()
	}
	return c.JSON(http.StatusCreated, rs)
}

// Update moves a reservation to another seat or showing.  Only the owner or
// an elevated role may do so.
func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given reservation_id is invalid.")
	}
	var in model.ReservationIn
	if err := c.Bind(&in); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	userID, role, err := identity(c)
	if err != nil {
		return unauthorized(c)
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	existing, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return detail(c, http.StatusNotFound, "Reservation not found")
		}
		return serviceError(c, err, nil, "")
	}
	if existing.UserID != userID && !model.IsElevated(role) {
		return unauthorized(c)
	}

	rs, err := h.Reservations.Update(ctx, id, model.ReservationBroker{ReservationIn: in, UserID: userID})
	if err != nil {
		return serviceError(c, err, repository.ErrReservationNotFound, "Reservation not found")
	}
	return c.JSON(http.StatusCreated, rs)
}

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "reservation_id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "Given reservation_id is invalid.")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ok, err := h.Reservations.Delete(ctx, id)
	if err != nil {
		return serviceError(c, err, nil, "")
	}
	if !ok {
		return detail(c, http.StatusNotFound, "Reservation not found")
	}
	return c.NoContent(http.StatusNoContent)
}
