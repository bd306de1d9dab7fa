package model

import "github.com/google/uuid"

// ReviewIn is the write-side payload for creating or replacing a review.
// Date is a plain "YYYY-MM-DD" string, validated by the service.
type ReviewIn struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	MovieID uint64 `json:"movie_id"`
}

// ReviewBroker extends ReviewIn with the acting user extracted from the token.
type ReviewBroker struct {
	ReviewIn
	UserID uuid.UUID `json:"user_id"`
}

// Review mirrors a row in the `reviews` table.
type Review struct {
	ID      uint64    `json:"id"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    string    `json:"date"`
	MovieID uint64    `json:"movie_id"`
	UserID  uuid.UUID `json:"user_id"`
}
