package repository // repository holds the SQL-backed data access layer

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrMovieNotFound is returned when a movie lookup fails.
var ErrMovieNotFound = errors.New("movie not found")

// ErrMovieExists is returned when an insert collides with the unique title.
var ErrMovieExists = errors.New("movie title already exists")

const movieColumns = "id, title, genre, age_restriction, duration, rating, user_id"

// MovieRepo provides CRUD and filtered reads over the movies table.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
	var (
		m      model.Movie
		rating sql.NullFloat64
		uid    string
	)
	if err := row.Scan(&m.ID, &m.Title, &m.Genre, &m.AgeRestriction, &m.Duration, &rating, &uid); err != nil {
		return nil, err
	}
	if rating.Valid {
		m.Rating = &rating.Float64
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	m.UserID = parsed
	return &m, nil
}

func (r *MovieRepo) list(ctx context.Context, query string, args ...any) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// GetAll returns every movie ordered by ascending id.
func (r *MovieRepo) GetAll(ctx context.Context) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies ORDER BY id ASC`)
}

// GetByID returns one movie or ErrMovieNotFound.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	return m, err
}

// GetByTitle returns the movie with the given (unique) title.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (*model.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE title = ?`, title)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	return m, err
}

// GetByGenre returns movies of a genre ordered by ascending id.
func (r *MovieRepo) GetByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies WHERE genre = ? ORDER BY id ASC`, genre)
}

// GetByAgeRestriction returns movies suitable for the given age.
func (r *MovieRepo) GetByAgeRestriction(ctx context.Context, age int) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies WHERE age_restriction <= ? ORDER BY id ASC`, age)
}

// GetByRating returns movies rated at or above the given value.
func (r *MovieRepo) GetByRating(ctx context.Context, rating float64) ([]model.Movie, error) {
	return r.list(ctx, `SELECT `+movieColumns+` FROM movies WHERE rating >= ? ORDER BY id ASC`, rating)
}

// Create inserts a movie and returns the stored row.
func (r *MovieRepo) Create(ctx context.Context, b model.MovieBroker) (*model.Movie, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO movies (title, genre, age_restriction, duration, rating, user_id) VALUES (?, ?, ?, ?, ?, ?)`,
		b.Title, b.Genre, b.AgeRestriction, b.Duration, b.Rating, b.UserID.String())
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrMovieExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces a movie row.  A missing id is a no-op returning
// ErrMovieNotFound; the store stays unchanged.
func (r *MovieRepo) Update(ctx context.Context, id uint64, b model.MovieBroker) (*model.Movie, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE movies SET title = ?, genre = ?, age_restriction = ?, duration = ?, rating = ?, user_id = ? WHERE id = ?`,
		b.Title, b.Genre, b.AgeRestriction, b.Duration, b.Rating, b.UserID.String(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a movie, reporting whether a row existed.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// isDuplicate detects a MySQL unique-key violation (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
