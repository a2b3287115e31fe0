package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

const (
	insertNoteSQL = `INSERT INTO notes \(user_id, title, content\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING id`
	listNotesSQL  = `SELECT id, user_id, title, content, created_at, updated_at\s+FROM notes\s+WHERE user_id = \$1\s+ORDER BY id`
	updateNoteSQL = `UPDATE notes\s+SET title = \$1, content = \$2, updated_at = now\(\)\s+WHERE id = \$3 AND user_id = \$4`
	deleteNoteSQL = `DELETE FROM notes\s+WHERE id = \$1 AND user_id = \$2`
)

func TestNoteRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(insertNoteSQL).
		WithArgs(models.UserID(1), "t1", "c1").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(models.NoteID(10)))

	id, err := repo.Create(context.Background(), 1, "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, models.NoteID(10), id)
}

func TestNoteRepository_Create_DBError(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(insertNoteSQL).
		WithArgs(models.UserID(1), "t1", "c1").
		WillReturnError(errors.New("fk violation"))

	_, err := repo.Create(context.Background(), 1, "t1", "c1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create note")
}

func TestNoteRepository_ListByOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	ts := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(listNotesSQL).
		WithArgs(models.UserID(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}).
			AddRow(models.NoteID(1), models.UserID(1), "t1", "c1", ts, ts).
			AddRow(models.NoteID(4), models.UserID(1), "t2", "c2", ts, ts))

	notes, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, models.NoteID(1), notes[0].ID)
	assert.Equal(t, "t2", notes[1].Title)
	assert.Equal(t, models.UserID(1), notes[1].OwnerID)
}

func TestNoteRepository_ListByOwner_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(listNotesSQL).
		WithArgs(models.UserID(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}))

	notes, err := repo.ListByOwner(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_ListByOwner_DBError(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(listNotesSQL).
		WithArgs(models.UserID(2)).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListByOwner(context.Background(), 2)
	assert.ErrorContains(t, err, "failed to list notes")
}

func TestNoteRepository_Update(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectExec(updateNoteSQL).
		WithArgs("t2", "c2", models.NoteID(1), models.UserID(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Update(context.Background(), 1, 1, "t2", "c2"))
}

func TestNoteRepository_Update_NotOwned(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectExec(updateNoteSQL).
		WithArgs("t2", "c2", models.NoteID(1), models.UserID(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), 2, 1, "t2", "c2")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestNoteRepository_Update_DBError(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectExec(updateNoteSQL).
		WithArgs("t2", "c2", models.NoteID(1), models.UserID(1)).
		WillReturnError(errors.New("boom"))

	err := repo.Update(context.Background(), 1, 1, "t2", "c2")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)
}

func TestNoteRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectExec(deleteNoteSQL).
		WithArgs(models.NoteID(1), models.UserID(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), 1, 1))
}

func TestNoteRepository_Delete_Missing(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectExec(deleteNoteSQL).
		WithArgs(models.NoteID(999), models.UserID(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 999), common.ErrNotFound)
}
