package models

import "time"

// NoteID identifies a note.
type NoteID int64

// Note is a text note owned by exactly one user.
type Note struct {
	ID        NoteID    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	OwnerID   UserID    `json:"-" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
