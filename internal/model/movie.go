package model

import "github.com/google/uuid"

// MovieIn is the write-side payload for creating or replacing a movie.
// Duration uses the "H.MM" shorthand, e.g. "2.15" for two hours fifteen.
type MovieIn struct {
	Title          string   `json:"title"`
	Genre          string   `json:"genre"`
	AgeRestriction int      `json:"age_restriction"`
	Duration       string   `json:"duration"`
	Rating         *float64 `json:"rating"`
}

// MovieBroker extends MovieIn with the acting user extracted from the token.
type MovieBroker struct {
	MovieIn
	UserID uuid.UUID `json:"user_id"`
}

// Movie mirrors a row in the `movies` table.
type Movie struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	Genre          string    `json:"genre"`
	AgeRestriction int       `json:"age_restriction"`
	Duration       string    `json:"duration"`
	Rating         *float64  `json:"rating"`
	UserID         uuid.UUID `json:"user_id"`
}
