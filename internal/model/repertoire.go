package model

import "github.com/google/uuid"

// RepertoireIn is the write-side payload for a repertoire.
type RepertoireIn struct {
	Name string `json:"name"`
}

// RepertoireBroker extends RepertoireIn with the acting user.
type RepertoireBroker struct {
	RepertoireIn
	UserID uuid.UUID `json:"user_id"`
}

// Repertoire mirrors a row in the `repertoires` table.  A repertoire groups
// the showings scheduled under one programme.
type Repertoire struct {
	ID     uint64    `json:"id"`
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"user_id"`
}
