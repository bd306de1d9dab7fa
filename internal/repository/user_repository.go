package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrUserNotFound is returned when a user lookup fails.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registration collides with an email.
var ErrEmailExists = errors.New("email already exists")

// ErrGenreNotFound is returned when a user has no reviews to derive a
// recommended genre from.
var ErrGenreNotFound = errors.New("recommended genre not found")

// UserRepo provides access to the users table and the review-based
// recommendation queries.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var (
		u   model.User
		uid string
	)
	if err := row.Scan(&uid, &u.Email, &u.Password, &u.Privilege); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	u.ID = parsed
	return &u, nil
}

// Create inserts a user with an ID generated here and returns the stored
// row.  The password must already be hashed.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash, privilege string) (*model.User, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password, privilege) VALUES (?, ?, ?, ?)`,
		id.String(), email, passwordHash, privilege)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return r.GetByUUID(ctx, id)
}

// GetByEmail returns one user by (unique) email or ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, privilege FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// GetByUUID returns one user by id or ErrUserNotFound.
func (r *UserRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, email, password, privilege FROM users WHERE id = ?`, id.String())
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// HasSuperAdmin reports whether a super_admin account already exists.  The
// bootstrap code may only mint one.
func (r *UserRepo) HasSuperAdmin(ctx context.Context) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE privilege = ?`, model.RoleSuperAdmin).Scan(&n)
	return n > 0, err
}

// RecommendedGenre returns the genre this user rated highest on average
// across their reviews, or ErrGenreNotFound when the user has no reviews.
func (r *UserRepo) RecommendedGenre(ctx context.Context, userID uuid.UUID) (string, error) {
	var genre string
	err := r.db.QueryRowContext(ctx,
		`SELECT m.genre FROM reviews rv
		 JOIN movies m ON rv.movie_id = m.id
		 WHERE rv.user_id = ?
		 GROUP BY m.genre
		 ORDER BY AVG(rv.rating) DESC
		 LIMIT 1`,
		userID.String()).Scan(&genre)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrGenreNotFound
	}
	return genre, err
}

// UnreviewedMoviesInGenre lists movies of the given genre the user has not
// reviewed yet, ordered by ascending id.
func (r *UserRepo) UnreviewedMoviesInGenre(ctx context.Context, userID uuid.UUID, genre string) ([]model.Movie, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+movieColumns+` FROM movies
		 WHERE genre = ? AND id NOT IN (SELECT movie_id FROM reviews WHERE user_id = ?)
		 ORDER BY id ASC`,
		genre, userID.String())
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
