package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrReviewNotFound is returned when a review lookup fails.
var ErrReviewNotFound = errors.New("review not found")

const reviewColumns = "r.id, r.rating, r.comment, r.date, r.movie_id, r.user_id"

// ReviewRepo provides CRUD and filtered reads over the reviews table.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo constructs a ReviewRepo with the given DB handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func scanReview(row interface{ Scan(...any) error }) (*model.Review, error) {
	var (
		rv  model.Review
		uid string
	)
	if err := row.Scan(&rv.ID, &rv.Rating, &rv.Comment, &rv.Date, &rv.MovieID, &uid); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	rv.UserID = parsed
	return &rv, nil
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

// GetAll returns every review ordered by ascending id.
func (r *ReviewRepo) GetAll(ctx context.Context) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews r ORDER BY r.id ASC`)
}

// GetByID returns one review or ErrReviewNotFound.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.id = ?`, id)
	rv, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	return rv, err
}

// GetByMovie returns the reviews of one movie.
func (r *ReviewRepo) GetByMovie(ctx context.Context, movieID uint64) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.movie_id = ? ORDER BY r.id ASC`, movieID)
}

// GetByMovieTitle returns reviews joined through the movies table.
func (r *ReviewRepo) GetByMovieTitle(ctx context.Context, title string) ([]model.Review, error) {
	return r.list(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN movies m ON r.movie_id = m.id WHERE m.title = ? ORDER BY r.id ASC`,
		title)
}

// GetByMovieTitleAndDate narrows GetByMovieTitle to a single review date.
func (r *ReviewRepo) GetByMovieTitleAndDate(ctx context.Context, title, date string) ([]model.Review, error) {
	return r.list(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN movies m ON r.movie_id = m.id
		 WHERE m.title = ? AND r.date = ? ORDER BY r.id ASC`,
		title, date)
}

// GetByMovieTitleAndRating narrows GetByMovieTitle to one rating value.
func (r *ReviewRepo) GetByMovieTitleAndRating(ctx context.Context, title string, rating int) ([]model.Review, error) {
	return r.list(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN movies m ON r.movie_id = m.id
		 WHERE m.title = ? AND r.rating = ? ORDER BY r.id ASC`,
		title, rating)
}

// GetByUser returns all reviews written by one user.
func (r *ReviewRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.user_id = ? ORDER BY r.id ASC`, userID.String())
}

// Create inserts a review and returns the stored row.
func (r *ReviewRepo) Create(ctx context.Context, b model.ReviewBroker) (*model.Review, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (rating, comment, date, movie_id, user_id) VALUES (?, ?, ?, ?, ?)`,
		b.Rating, b.Comment, b.Date, b.MovieID, b.UserID.String())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces a review row, or returns ErrReviewNotFound untouched.
func (r *ReviewRepo) Update(ctx context.Context, id uint64, b model.ReviewBroker) (*model.Review, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE reviews SET rating = ?, comment = ?, date = ?, movie_id = ?, user_id = ? WHERE id = ?`,
		b.Rating, b.Comment, b.Date, b.MovieID, b.UserID.String(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a review, reporting whether a row existed.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
