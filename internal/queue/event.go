// Package queue holds the message payloads exchanged over the broker plus
// the publisher and background consumer for them.
package queue

// ReservationConfirmedEvent is published after a reservation row is written.
// It carries enough for downstream consumers (logging, notifications) to act
// without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	UserID        string `json:"user_id"`
	ShowingID     uint64 `json:"showing_id"`
	SeatRow       string `json:"seat_row"`
	SeatNum       string `json:"seat_num"`
	ConfirmedAt   string `json:"confirmed_at"`
}
