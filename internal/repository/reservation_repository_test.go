package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

func reservationRows(ids ...uint64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "seat_row", "seat_num", "showing_id", "user_id"})
	for _, id := range ids {
		rows.AddRow(id, "A", "1", 1, uuid.NewString())
	}
	return rows
}

func TestReservationLayoutForShowing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT h.seats FROM showings s JOIN halls h ON s.hall_id = h.id WHERE s.id = ?`,
	)).WithArgs(5).WillReturnRows(
		sqlmock.NewRows([]string{"seats"}).AddRow([]byte(`{"A":["1","2"],"B":["1","2"]}`)),
	)

	layout, err := repo.LayoutForShowing(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, model.SeatLayout{"A": {"1", "2"}, "B": {"1", "2"}}, layout)
}

func TestReservationLayoutForMissingShowing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT h.seats FROM showings`)).
		WithArgs(99).WillReturnRows(sqlmock.NewRows([]string{"seats"}))

	_, err := repo.LayoutForShowing(context.Background(), 99)
	assert.ErrorIs(t, err, ErrShowingNotFound)
}

// The unique (showing_id, seat_row, seat_num) key is the last line of
// defence against two requests grabbing the same seat.
func TestReservationCreateSeatConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations`)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '1-A-1' for key 'uq_reservations_seat'"))

	b := model.ReservationBroker{
		ReservationIn: model.ReservationIn{SeatRow: "A", SeatNum: "1", ShowingID: 1},
		UserID:        uuid.New(),
	}
	_, err := repo.Create(context.Background(), b)
	assert.ErrorIs(t, err, ErrSeatConflict)
}

func TestReservationCreateReturnsStoredRow(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	userID := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reservations`)).
		WithArgs("A", "1", 1, userID.String()).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations r WHERE r.id = ?`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seat_row", "seat_num", "showing_id", "user_id"}).
			AddRow(7, "A", "1", 1, userID.String()))

	b := model.ReservationBroker{
		ReservationIn: model.ReservationIn{SeatRow: "A", SeatNum: "1", ShowingID: 1},
		UserID:        userID,
	}
	rs, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), rs.ID)
	assert.Equal(t, userID, rs.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationUpdateMissing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations r WHERE r.id = ?`)).
		WithArgs(3).WillReturnRows(reservationRows())

	b := model.ReservationBroker{
		ReservationIn: model.ReservationIn{SeatRow: "A", SeatNum: "1", ShowingID: 1},
		UserID:        uuid.New(),
	}
	_, err := repo.Update(context.Background(), 3, b)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationGetByShowingOrdersByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewReservationRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM reservations r WHERE r.showing_id = ? ORDER BY r.id ASC`)).
		WithArgs(1).WillReturnRows(reservationRows(1, 2))

	out, err := repo.GetByShowing(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, uint64(1), out[0].ID)
}
