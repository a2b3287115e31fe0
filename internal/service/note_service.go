package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

const maxTitleLength = 200

// NoteStore is the note persistence used by NoteService. Implementations
// must scope every statement by owner.
type NoteStore interface {
	Create(ctx context.Context, ownerID models.UserID, title, content string) (models.NoteID, error)
	ListByOwner(ctx context.Context, ownerID models.UserID) ([]models.Note, error)
	Update(ctx context.Context, ownerID models.UserID, id models.NoteID, title, content string) error
	Delete(ctx context.Context, ownerID models.UserID, id models.NoteID) error
}

// NoteService performs note operations on behalf of an already verified
// owner.
type NoteService struct {
	notes NoteStore
}

// NewNoteService creates a NoteService.
func NewNoteService(notes NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

// validateNote checks the title only. Content may be any string, including
// the empty one.
func validateNote(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", common.ErrInvalidInput, maxTitleLength)
	}
	return nil
}

// Create stores a new note owned by owner.
func (s *NoteService) Create(ctx context.Context, owner models.UserID, title, content string) (models.NoteID, error) {
	if err := validateNote(title); err != nil {
		return 0, err
	}
	id, err := s.notes.Create(ctx, owner, title, content)
	if err != nil {
		return 0, fmt.Errorf("error creating note: %w", err)
	}
	return id, nil
}

// List returns every note of owner. The result is never nil.
func (s *NoteService) List(ctx context.Context, owner models.UserID) ([]models.Note, error) {
	notes, err := s.notes.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// Update replaces title and content of one of owner's notes.
func (s *NoteService) Update(ctx context.Context, owner models.UserID, id models.NoteID, title, content string) error {
	if err := validateNote(title); err != nil {
		return err
	}
	if err := s.notes.Update(ctx, owner, id, title, content); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

// Delete removes one of owner's notes.
func (s *NoteService) Delete(ctx context.Context, owner models.UserID, id models.NoteID) error {
	if err := s.notes.Delete(ctx, owner, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting note: %w", err)
	}
	return nil
}
