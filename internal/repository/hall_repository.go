package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrHallNotFound is returned when a hall lookup fails.
var ErrHallNotFound = errors.New("hall not found")

// ErrHallExists is returned when an insert collides with the unique alias.
var ErrHallExists = errors.New("hall alias already exists")

// HallRepo provides CRUD over the halls table.  The seat layout is stored
// as a JSON document in halls.seats.
type HallRepo struct {
	db *sql.DB
}

// NewHallRepo constructs a HallRepo with the given DB handle.
func NewHallRepo(db *sql.DB) *HallRepo {
	return &HallRepo{db: db}
}

func scanHall(row interface{ Scan(...any) error }) (*model.Hall, error) {
	var (
		h     model.Hall
		seats []byte
		uid   string
	)
	if err := row.Scan(&h.ID, &h.Alias, &h.SeatAmount, &h.RowAmount, &seats, &uid); err != nil {
		return nil, err
	}
	if len(seats) > 0 {
		if err := json.Unmarshal(seats, &h.Seats); err != nil {
			return nil, err
		}
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	h.UserID = parsed
	return &h, nil
}

// GetAll returns every hall ordered by ascending id.
func (r *HallRepo) GetAll(ctx context.Context) ([]model.Hall, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, alias, seat_amount, row_amount, seats, user_id FROM halls ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Hall{}
	for rows.Next() {
		h, err := scanHall(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

// GetByID returns one hall or ErrHallNotFound.
func (r *HallRepo) GetByID(ctx context.Context, id uint64) (*model.Hall, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, alias, seat_amount, row_amount, seats, user_id FROM halls WHERE id = ?`, id)
	h, err := scanHall(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	return h, err
}

// GetByAlias returns the hall with the given (unique) alias.
func (r *HallRepo) GetByAlias(ctx context.Context, alias string) (*model.Hall, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, alias, seat_amount, row_amount, seats, user_id FROM halls WHERE alias = ?`, alias)
	h, err := scanHall(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	return h, err
}

// Create inserts a hall and returns the stored row.  When the broker carries
// no layout, a default grid is generated from the row and seat counts.
func (r *HallRepo) Create(ctx context.Context, b model.HallBroker) (*model.Hall, error) {
	layout := b.Seats
	if layout == nil {
		layout = model.NewSeatLayout(b.RowAmount, b.SeatAmount)
	}
	seats, err := json.Marshal(layout)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO halls (alias, seat_amount, row_amount, seats, user_id) VALUES (?, ?, ?, ?, ?)`,
		b.Alias, b.SeatAmount, b.RowAmount, seats, b.UserID.String())
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrHallExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces the alias and owner of a hall.  The seating layout is
// fixed at creation time; a missing id returns ErrHallNotFound untouched.
func (r *HallRepo) Update(ctx context.Context, id uint64, b model.HallBroker) (*model.Hall, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE halls SET alias = ?, user_id = ? WHERE id = ?`, b.Alias, b.UserID.String(), id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a hall, reporting whether a row existed.
func (r *HallRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM halls WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
