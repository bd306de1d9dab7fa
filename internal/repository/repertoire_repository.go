package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrRepertoireNotFound is returned when a repertoire lookup fails.
var ErrRepertoireNotFound = errors.New("repertoire not found")

// RepertoireRepo provides CRUD over the repertoires table.
type RepertoireRepo struct {
	db *sql.DB
}

// NewRepertoireRepo constructs a RepertoireRepo with the given DB handle.
func NewRepertoireRepo(db *sql.DB) *RepertoireRepo {
	return &RepertoireRepo{db: db}
}

func scanRepertoire(row interface{ Scan(...any) error }) (*model.Repertoire, error) {
	var (
		rp  model.Repertoire
		uid string
	)
	if err := row.Scan(&rp.ID, &rp.Name, &uid); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	rp.UserID = parsed
	return &rp, nil
}

// GetAll returns every repertoire ordered by ascending id.
func (r *RepertoireRepo) GetAll(ctx context.Context) ([]model.Repertoire, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, user_id FROM repertoires ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Repertoire{}
	for rows.Next() {
		rp, err := scanRepertoire(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rp)
	}
	return out, rows.Err()
}

// GetByID returns one repertoire or ErrRepertoireNotFound.
func (r *RepertoireRepo) GetByID(ctx context.Context, id uint64) (*model.Repertoire, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, user_id FROM repertoires WHERE id = ?`, id)
	rp, err := scanRepertoire(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRepertoireNotFound
	}
	return rp, err
}

// Create inserts a repertoire and returns the stored row.
func (r *RepertoireRepo) Create(ctx context.Context, b model.RepertoireBroker) (*model.Repertoire, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO repertoires (name, user_id) VALUES (?, ?)`, b.Name, b.UserID.String())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces a repertoire row, or returns ErrRepertoireNotFound untouched.
func (r *RepertoireRepo) Update(ctx context.Context, id uint64, b model.RepertoireBroker) (*model.Repertoire, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if _, err := r.db.ExecContext(ctx,
		`UPDATE repertoires SET name = ?, user_id = ? WHERE id = ?`, b.Name, b.UserID.String(), id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a repertoire, reporting whether a row existed.
func (r *RepertoireRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM repertoires WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
