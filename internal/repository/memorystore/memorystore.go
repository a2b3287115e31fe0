// Package memorystore is an in-process implementation of the user and note
// stores for tests. It mirrors the PostgreSQL repositories: unique usernames,
// generated ids, owner-scoped note statements.
package memorystore

import (
	"context"
	"sync"
	"time"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

// Store keeps users and notes in process memory.
type Store struct {
	mu         sync.Mutex
	users      map[string]models.User
	notes      map[models.NoteID]models.Note
	nextUserID models.UserID
	nextNoteID models.NoteID
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users: make(map[string]models.User),
		notes: make(map[models.NoteID]models.Note),
	}
}

// Users returns the credential store view.
func (m *Store) Users() *UserRepository { return &UserRepository{m: m} }

// Notes returns the note store view.
func (m *Store) Notes() *NoteRepository { return &NoteRepository{m: m} }

// UserRepository is the credential store view of a Store.
type UserRepository struct{ m *Store }

func (r *UserRepository) Create(_ context.Context, username, passwordHash string) (models.UserID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.users[username]; ok {
		return 0, common.ErrDuplicateUsername
	}
	r.m.nextUserID++
	r.m.users[username] = models.User{
		ID:           r.m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return r.m.nextUserID, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

// NoteRepository is the note store view of a Store.
type NoteRepository struct{ m *Store }

func (r *NoteRepository) Create(_ context.Context, ownerID models.UserID, title, content string) (models.NoteID, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	r.m.nextNoteID++
	now := time.Now()
	r.m.notes[r.m.nextNoteID] = models.Note{
		ID:        r.m.nextNoteID,
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.m.nextNoteID, nil
}

func (r *NoteRepository) ListByOwner(_ context.Context, ownerID models.UserID) ([]models.Note, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	notes := []models.Note{}
	for id := models.NoteID(1); id <= r.m.nextNoteID; id++ {
		if n, ok := r.m.notes[id]; ok && n.OwnerID == ownerID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

func (r *NoteRepository) Update(_ context.Context, ownerID models.UserID, id models.NoteID, title, content string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	n, ok := r.m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return common.ErrNotFound
	}
	n.Title = title
	n.Content = content
	n.UpdatedAt = time.Now()
	r.m.notes[id] = n
	return nil
}

func (r *NoteRepository) Delete(_ context.Context, ownerID models.UserID, id models.NoteID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	n, ok := r.m.notes[id]
	if !ok || n.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(r.m.notes, id)
	return nil
}
