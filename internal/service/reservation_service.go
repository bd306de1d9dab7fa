package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
	"github.com/wiktorkow/cinemaapi/internal/repository"
)

// ReservationRepository is what the reservation service needs from the data
// layer.  *repository.ReservationRepo satisfies it.
type ReservationRepository interface {
	GetAll(ctx context.Context) ([]model.Reservation, error)
	GetByID(ctx context.Context, id uint64) (*model.Reservation, error)
	GetByMovieTitle(ctx context.Context, title string) ([]model.Reservation, error)
	GetByShowing(ctx context.Context, showingID uint64) ([]model.Reservation, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Reservation, error)
	LayoutForShowing(ctx context.Context, showingID uint64) (model.SeatLayout, error)
	Create(ctx context.Context, b model.ReservationBroker) (*model.Reservation, error)
	Update(ctx context.Context, id uint64, b model.ReservationBroker) (*model.Reservation, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ReservationService validates seat selections against the hall layout and
// existing reservations before touching the store.
type ReservationService struct {
	repo ReservationRepository
}

// NewReservationService constructs a ReservationService.
func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{repo: repo}
}

func (s *ReservationService) GetAll(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.GetAll(ctx)
}

func (s *ReservationService) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) GetByMovieTitle(ctx context.Context, title string) ([]model.Reservation, error) {
	return s.repo.GetByMovieTitle(ctx, title)
}

func (s *ReservationService) GetByShowing(ctx context.Context, showingID uint64) ([]model.Reservation, error) {
	return s.repo.GetByShowing(ctx, showingID)
}

func (s *ReservationService) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Reservation, error) {
	return s.repo.GetByUser(ctx, userID)
}

// Validate checks a reservation against the showing's hall layout and the
// seats already taken.  The checks run in a fixed order: showing exists,
// seat free, row valid, number valid.
func (s *ReservationService) Validate(ctx context.Context, b model.ReservationBroker) error {
	layout, err := s.repo.LayoutForShowing(ctx, b.ShowingID)
	if err != nil {
		if errors.Is(err, repository.ErrShowingNotFound) {
			return ErrShowingUnavailable
		}
		return err
	}

	taken, err := s.repo.GetByShowing(ctx, b.ShowingID)
	if err != nil {
		return err
	}
	for _, rs := range taken {
		if rs.SeatRow == b.SeatRow && rs.SeatNum == b.SeatNum {
			return ErrSeatTaken
		}
	}

	row, ok := layout[b.SeatRow]
	if !ok {
		return ErrSeatRowInvalid
	}
	for _, seat := range row {
		if seat == b.SeatNum {
			return nil
		}
	}
	return ErrSeatNumInvalid
}

// Create validates and inserts.  A seat conflict raced in by another
// request after validation still comes back as the seat-taken outcome,
// courtesy of the store's unique key.
func (s *ReservationService) Create(ctx context.Context, b model.ReservationBroker) (*model.Reservation, error) {
	if err := s.Validate(ctx, b); err != nil {
		return nil, err
	}
	rs, err := s.repo.Create(ctx, b)
	if errors.Is(err, repository.ErrSeatConflict) {
		return nil, ErrSeatTaken
	}
	return rs, err
}

// Update validates and replaces the seat selection of an existing
// reservation.  A missing id surfaces as repository.ErrReservationNotFound.
func (s *ReservationService) Update(ctx context.Context, id uint64, b model.ReservationBroker) (*model.Reservation, error) {
	if err := s.Validate(ctx, b); err != nil {
		return nil, err
	}
	rs, err := s.repo.Update(ctx, id, b)
	if errors.Is(err, repository.ErrSeatConflict) {
		return nil, ErrSeatTaken
	}
	return rs, err
}

// Delete removes a reservation, reporting whether it existed.
func (s *ReservationService) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}
