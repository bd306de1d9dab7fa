package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func movieRows(ids ...uint64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "genre", "age_restriction", "duration", "rating", "user_id"})
	for _, id := range ids {
		rows.AddRow(id, "Title", "drama", 15, "2.10", 4.5, uuid.NewString())
	}
	return rows
}

func TestMovieGetAllOrdersByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, genre, age_restriction, duration, rating, user_id FROM movies ORDER BY id ASC`,
	)).WillReturnRows(movieRows(1, 2, 3))

	movies, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, uint64(1), movies[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, title, genre, age_restriction, duration, rating, user_id FROM movies WHERE id = ?`,
	)).WithArgs(99).WillReturnRows(movieRows())

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestMovieGetByIDNullRating(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	rows := sqlmock.NewRows([]string{"id", "title", "genre", "age_restriction", "duration", "rating", "user_id"}).
		AddRow(1, "Title", "drama", 15, "2.10", nil, uuid.NewString())
	mock.ExpectQuery(regexp.QuoteMeta(`FROM movies WHERE id = ?`)).
		WithArgs(1).WillReturnRows(rows)

	m, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, m.Rating)
}

func TestMovieCreateDuplicateTitle(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO movies`)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'Title' for key 'uq_movies_title'"))

	b := model.MovieBroker{MovieIn: model.MovieIn{Title: "Title"}, UserID: uuid.New()}
	_, err := repo.Create(context.Background(), b)
	assert.ErrorIs(t, err, ErrMovieExists)
}

func TestMovieUpdateMissingLeavesStoreUntouched(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM movies WHERE id = ?`)).
		WithArgs(42).WillReturnRows(movieRows())

	b := model.MovieBroker{MovieIn: model.MovieIn{Title: "Title"}, UserID: uuid.New()}
	_, err := repo.Update(context.Background(), 42, b)
	assert.ErrorIs(t, err, ErrMovieNotFound)
	// No UPDATE was expected; any write would fail ExpectationsWereMet.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieDeleteReportsExistence(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMovieRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM movies WHERE id = ?`)).
		WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM movies WHERE id = ?`)).
		WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
