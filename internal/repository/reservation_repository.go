package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrReservationNotFound is returned when a reservation lookup fails.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrSeatConflict is returned when an insert or update collides with the
// unique (showing_id, seat_row, seat_num) key.  The service performs a
// friendly pre-check, but the constraint is what closes the race between
// two concurrent requests for the same seat.
var ErrSeatConflict = errors.New("seat already reserved")

const reservationColumns = "r.id, r.seat_row, r.seat_num, r.showing_id, r.user_id"

// ReservationRepo provides CRUD and filtered reads over the reservations
// table.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo constructs a ReservationRepo with the given DB handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func scanReservation(row interface{ Scan(...any) error }) (*model.Reservation, error) {
	var (
		rs  model.Reservation
		uid string
	)
	if err := row.Scan(&rs.ID, &rs.SeatRow, &rs.SeatNum, &rs.ShowingID, &uid); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	rs.UserID = parsed
	return &rs, nil
}

func (r *ReservationRepo) list(ctx context.Context, query string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Reservation{}
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rs)
	}
	return out, rows.Err()
}

// GetAll returns every reservation ordered by ascending id.
func (r *ReservationRepo) GetAll(ctx context.Context) ([]model.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations r ORDER BY r.id ASC`)
}

// GetByID returns one reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations r WHERE r.id = ?`, id)
	rs, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	return rs, err
}

// GetByMovieTitle returns reservations joined through showings and movies.
func (r *ReservationRepo) GetByMovieTitle(ctx context.Context, title string) ([]model.Reservation, error) {
	return r.list(ctx,
		`SELECT `+reservationColumns+` FROM reservations r
		 JOIN showings s ON r.showing_id = s.id
		 JOIN movies m ON s.movie_id = m.id
		 WHERE m.title = ? ORDER BY r.id ASC`,
		title)
}

// GetByShowing returns all reservations placed for one showing.
func (r *ReservationRepo) GetByShowing(ctx context.Context, showingID uint64) ([]model.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations r WHERE r.showing_id = ? ORDER BY r.id ASC`, showingID)
}

// GetByUser returns all reservations made by one user.
func (r *ReservationRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations r WHERE r.user_id = ? ORDER BY r.id ASC`, userID.String())
}

// LayoutForShowing resolves the seat layout of the hall a showing plays in.
// Returns ErrShowingNotFound when the showing (or its hall) does not exist.
func (r *ReservationRepo) LayoutForShowing(ctx context.Context, showingID uint64) (model.SeatLayout, error) {
	var seats []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT h.seats FROM showings s JOIN halls h ON s.hall_id = h.id WHERE s.id = ?`,
		showingID).Scan(&seats)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShowingNotFound
	}
	if err != nil {
		return nil, err
	}
	var layout model.SeatLayout
	if err := json.Unmarshal(seats, &layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// Create inserts a reservation and returns the stored row.  A duplicate
// seat on the same showing surfaces as ErrSeatConflict.
func (r *ReservationRepo) Create(ctx context.Context, b model.ReservationBroker) (*model.Reservation, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reservations (seat_row, seat_num, showing_id, user_id) VALUES (?, ?, ?, ?)`,
		b.SeatRow, b.SeatNum, b.ShowingID, b.UserID.String())
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrSeatConflict
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update moves a reservation to another seat/showing, or returns
// ErrReservationNotFound untouched.  Seat collisions surface as
// ErrSeatConflict.
func (r *ReservationRepo) Update(ctx context.Context, id uint64, b model.ReservationBroker) (*model.Reservation, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET seat_row = ?, seat_num = ?, showing_id = ? WHERE id = ?`,
		b.SeatRow, b.SeatNum, b.ShowingID, id)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrSeatConflict
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a reservation, reporting whether a row existed.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
