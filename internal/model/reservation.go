package model

import "github.com/google/uuid"

// ReservationIn is the write-side payload for a reservation.  Seat row and
// number are the labels from the hall layout ("A", "12").
type ReservationIn struct {
	SeatRow   string `json:"seat_row"`
	SeatNum   string `json:"seat_num"`
	ShowingID uint64 `json:"showing_id"`
}

// ReservationBroker extends ReservationIn with the acting user.
type ReservationBroker struct {
	ReservationIn
	UserID uuid.UUID `json:"user_id"`
}

// Reservation mirrors a row in the `reservations` table.  The tuple
// (showing_id, seat_row, seat_num) is unique, enforced both by a pre-insert
// check in the service and a unique key at the store.
type Reservation struct {
	ID        uint64    `json:"id"`
	SeatRow   string    `json:"seat_row"`
	SeatNum   string    `json:"seat_num"`
	ShowingID uint64    `json:"showing_id"`
	UserID    uuid.UUID `json:"user_id"`
}
