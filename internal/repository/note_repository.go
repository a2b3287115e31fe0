package repository

import (
	"context"
	"fmt"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

// NoteRepository persists notes. Every statement is scoped by owner, so a
// note belonging to someone else behaves exactly like a missing one.
type NoteRepository struct {
	db DBTX
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create creates a new note owned by ownerID
func (r *NoteRepository) Create(ctx context.Context, ownerID models.UserID, title, content string) (models.NoteID, error) {
	query := `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id models.NoteID
	if err := r.db.QueryRow(ctx, query, ownerID, title, content).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	return id, nil
}

// ListByOwner returns all notes of ownerID in insertion order
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID models.UserID) ([]models.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

// Update replaces title and content of a note owned by ownerID
func (r *NoteRepository) Update(ctx context.Context, ownerID models.UserID, id models.NoteID, title, content string) error {
	query := `
		UPDATE notes
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
	`

	tag, err := r.db.Exec(ctx, query, title, content, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}

// Delete deletes a note owned by ownerID
func (r *NoteRepository) Delete(ctx context.Context, ownerID models.UserID, id models.NoteID) error {
	query := `
		DELETE FROM notes
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}

	return nil
}
