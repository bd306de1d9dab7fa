package model

import "github.com/google/uuid"

// ShowingIn is the write-side payload for a showing.  Date is "YYYY-MM-DD",
// Time is "HH:MM"; both are kept as strings and validated by the service.
type ShowingIn struct {
	LanguageVer  string  `json:"language_ver"`
	Price        float64 `json:"price"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	RepertoireID uint64  `json:"repertoire_id"`
	MovieID      uint64  `json:"movie_id"`
	HallID       uint64  `json:"hall_id"`
}

// ShowingBroker extends ShowingIn with the acting user.
type ShowingBroker struct {
	ShowingIn
	UserID uuid.UUID `json:"user_id"`
}

// Showing mirrors a row in the `showings` table: one scheduled screening of
// a movie in a hall, belonging to a repertoire.
type Showing struct {
	ID           uint64    `json:"id"`
	LanguageVer  string    `json:"language_ver"`
	Price        float64   `json:"price"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	RepertoireID uint64    `json:"repertoire_id"`
	MovieID      uint64    `json:"movie_id"`
	HallID       uint64    `json:"hall_id"`
	UserID       uuid.UUID `json:"user_id"`
}
