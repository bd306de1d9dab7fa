package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

// ErrShowingNotFound is returned when a showing lookup fails.
var ErrShowingNotFound = errors.New("showing not found")

const showingColumns = "s.id, s.language_ver, s.price, s.date, s.time, s.repertoire_id, s.movie_id, s.hall_id, s.user_id"

// ShowingRepo provides CRUD and filtered reads over the showings table.
type ShowingRepo struct {
	db *sql.DB
}

// NewShowingRepo constructs a ShowingRepo with the given DB handle.
func NewShowingRepo(db *sql.DB) *ShowingRepo {
	return &ShowingRepo{db: db}
}

func scanShowing(row interface{ Scan(...any) error }) (*model.Showing, error) {
	var (
		s       model.Showing
		movieID sql.NullInt64
		hallID  sql.NullInt64
		uid     string
	)
	// movie_id and hall_id are NOT NULL in the schema; scanning through
	// NullInt64 keeps list queries working on rows predating that.
	if err := row.Scan(&s.ID, &s.LanguageVer, &s.Price, &s.Date, &s.Time, &s.RepertoireID, &movieID, &hallID, &uid); err != nil {
		return nil, err
	}
	s.MovieID = uint64(movieID.Int64)
	s.HallID = uint64(hallID.Int64)
	parsed, err := uuid.Parse(uid)
	if err != nil {
		return nil, err
	}
	s.UserID = parsed
	return &s, nil
}

func (r *ShowingRepo) list(ctx context.Context, query string, args ...any) ([]model.Showing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Showing{}
	for rows.Next() {
		s, err := scanShowing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

// GetAll returns every showing ordered by ascending id.
func (r *ShowingRepo) GetAll(ctx context.Context) ([]model.Showing, error) {
	return r.list(ctx, `SELECT `+showingColumns+` FROM showings s ORDER BY s.id ASC`)
}

// GetByID returns one showing or ErrShowingNotFound.
func (r *ShowingRepo) GetByID(ctx context.Context, id uint64) (*model.Showing, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+showingColumns+` FROM showings s WHERE s.id = ?`, id)
	s, err := scanShowing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrShowingNotFound
	}
	return s, err
}

// GetByRepertoire returns the showings scheduled under one repertoire.
func (r *ShowingRepo) GetByRepertoire(ctx context.Context, repertoireID uint64) ([]model.Showing, error) {
	return r.list(ctx, `SELECT `+showingColumns+` FROM showings s WHERE s.repertoire_id = ? ORDER BY s.id ASC`, repertoireID)
}

// GetByDate returns the showings on one calendar date.
func (r *ShowingRepo) GetByDate(ctx context.Context, date string) ([]model.Showing, error) {
	return r.list(ctx, `SELECT `+showingColumns+` FROM showings s WHERE s.date = ? ORDER BY s.id ASC`, date)
}

// GetByTime returns the showings starting at or after the given "HH:MM".
func (r *ShowingRepo) GetByTime(ctx context.Context, timeOfDay string) ([]model.Showing, error) {
	return r.list(ctx, `SELECT `+showingColumns+` FROM showings s WHERE s.time >= ? ORDER BY s.id ASC`, timeOfDay)
}

// GetByLanguageVer returns the showings in one language version.
func (r *ShowingRepo) GetByLanguageVer(ctx context.Context, languageVer string) ([]model.Showing, error) {
	return r.list(ctx, `SELECT `+showingColumns+` FROM showings s WHERE s.language_ver = ? ORDER BY s.id ASC`, languageVer)
}

// GetByMovieGenre returns showings of movies in one genre.
func (r *ShowingRepo) GetByMovieGenre(ctx context.Context, genre string) ([]model.Showing, error) {
	return r.list(ctx,
		`SELECT `+showingColumns+` FROM showings s JOIN movies m ON s.movie_id = m.id WHERE m.genre = ? ORDER BY s.id ASC`,
		genre)
}

// GetByMovieTitle returns showings of one movie by its title.
func (r *ShowingRepo) GetByMovieTitle(ctx context.Context, title string) ([]model.Showing, error) {
	return r.list(ctx,
		`SELECT `+showingColumns+` FROM showings s JOIN movies m ON s.movie_id = m.id WHERE m.title = ? ORDER BY s.id ASC`,
		title)
}

// GetByAgeRestriction returns showings of movies suitable for the given age.
func (r *ShowingRepo) GetByAgeRestriction(ctx context.Context, age int) ([]model.Showing, error) {
	return r.list(ctx,
		`SELECT `+showingColumns+` FROM showings s JOIN movies m ON s.movie_id = m.id
		 WHERE m.age_restriction <= ? ORDER BY s.id ASC`,
		age)
}

// ExistsAt reports whether the hall already has a showing at the given date
// and time.  Used by the service to reject double-booked halls.
func (r *ShowingRepo) ExistsAt(ctx context.Context, hallID uint64, date, timeOfDay string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM showings WHERE hall_id = ? AND date = ? AND time = ?`,
		hallID, date, timeOfDay).Scan(&n)
	return n > 0, err
}

// Create inserts a showing and returns the stored row.
func (r *ShowingRepo) Create(ctx context.Context, b model.ShowingBroker) (*model.Showing, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO showings (language_ver, price, date, time, repertoire_id, movie_id, hall_id, user_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.LanguageVer, b.Price, b.Date, b.Time, b.RepertoireID, b.MovieID, b.HallID, b.UserID.String())
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, uint64(id))
}

// Update replaces a showing row, or returns ErrShowingNotFound untouched.
func (r *ShowingRepo) Update(ctx context.Context, id uint64, b model.ShowingBroker) (*model.Showing, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE showings SET language_ver = ?, price = ?, date = ?, time = ?, repertoire_id = ?, movie_id = ?, hall_id = ?, user_id = ?
		 WHERE id = ?`,
		b.LanguageVer, b.Price, b.Date, b.Time, b.RepertoireID, b.MovieID, b.HallID, b.UserID.String(), id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes a showing, reporting whether a row existed.
func (r *ShowingRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM showings WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
