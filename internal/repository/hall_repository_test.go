package repository

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/model"
)

func TestHallCreateGeneratesDefaultLayout(t *testing.T) {
	db, mock := newMock(t)
	repo := NewHallRepo(db)

	userID := uuid.New()
	wantLayout := model.NewSeatLayout(2, 2)
	wantJSON, err := json.Marshal(wantLayout)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO halls`)).
		WithArgs("main", 2, 2, wantJSON, userID.String()).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM halls WHERE id = ?`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "alias", "seat_amount", "row_amount", "seats", "user_id"}).
			AddRow(3, "main", 2, 2, wantJSON, userID.String()))

	b := model.HallBroker{
		HallIn: model.HallIn{Alias: "main", SeatAmount: 2, RowAmount: 2},
		UserID: userID,
	}
	h, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, wantLayout, h.Seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHallGetByAliasNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewHallRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM halls WHERE alias = ?`)).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id", "alias", "seat_amount", "row_amount", "seats", "user_id"}))

	_, err := repo.GetByAlias(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrHallNotFound)
}
