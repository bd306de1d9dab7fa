package model

import (
	"strconv"

	"github.com/google/uuid"
)

// SeatLayout maps a row label ("A", "B", ...) to the seat labels in that row.
// Stored as JSON in halls.seats.
type SeatLayout map[string][]string

// NewSeatLayout builds the default grid for a hall: rowAmount rows labelled
// alphabetically, each holding seatAmount seats labelled "1"..."n".
func NewSeatLayout(rowAmount, seatAmount int) SeatLayout {
	layout := make(SeatLayout, rowAmount)
	for r := 0; r < rowAmount; r++ {
		row := make([]string, seatAmount)
		for s := 0; s < seatAmount; s++ {
			row[s] = strconv.Itoa(s + 1)
		}
		layout[RowLabel(r)] = row
	}
	return layout
}

// RowLabel converts a zero-based row index into its alphabetical label:
// 0 -> "A", 25 -> "Z", 26 -> "AA".
func RowLabel(i int) string {
	if i < 0 {
		return ""
	}
	var runes []rune
	for {
		runes = append(runes, rune('A'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for j, k := 0, len(runes)-1; j < k; j, k = j+1, k-1 {
		runes[j], runes[k] = runes[k], runes[j]
	}
	return string(runes)
}

// HallIn is the write-side payload for a hall.  Seats may be supplied by the
// client; when nil a default layout is generated from the row and seat counts.
type HallIn struct {
	Alias      string     `json:"alias"`
	SeatAmount int        `json:"seat_amount"`
	RowAmount  int        `json:"row_amount"`
	Seats      SeatLayout `json:"seats"`
}

// HallBroker extends HallIn with the acting user.
type HallBroker struct {
	HallIn
	UserID uuid.UUID `json:"user_id"`
}

// Hall mirrors a row in the `halls` table.  Alias is unique.
type Hall struct {
	ID         uint64     `json:"id"`
	Alias      string     `json:"alias"`
	SeatAmount int        `json:"seat_amount"`
	RowAmount  int        `json:"row_amount"`
	Seats      SeatLayout `json:"seats"`
	UserID     uuid.UUID  `json:"user_id"`
}
