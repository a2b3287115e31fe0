package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/dto"
	"NOTES_BACK-END/internal/middleware"
	"NOTES_BACK-END/internal/models"
	"NOTES_BACK-END/internal/utils"
)

// NoteService is what NotesHandler needs from the note business layer.
type NoteService interface {
	Create(ctx context.Context, owner models.UserID, title, content string) (models.NoteID, error)
	List(ctx context.Context, owner models.UserID) ([]models.Note, error)
	Update(ctx context.Context, owner models.UserID, id models.NoteID, title, content string) error
	Delete(ctx context.Context, owner models.UserID, id models.NoteID) error
}

// NotesHandler serves the note CRUD endpoints. Every route is expected to
// sit behind middleware.AuthMiddleware.
type NotesHandler struct {
	notes NoteService
}

// NewNotesHandler creates a new NotesHandler instance
func NewNotesHandler(notes NoteService) *NotesHandler {
	return &NotesHandler{notes: notes}
}

// Create handles note creation
// @Summary Create a note
// @Description Create a note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NoteRequest true "Note data"
// @Success 201 {object} dto.CreateNoteResponse "Note created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [post]
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	title, content, ok := decodeNote(w, r)
	if !ok {
		return
	}

	id, err := h.notes.Create(r.Context(), owner, title, content)
	if err != nil {
		h.writeError(w, r, err, "Failed to create note")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.CreateNoteResponse{Message: "Note created", ID: id})
}

// List handles listing the caller's notes
// @Summary List notes
// @Description Get every note owned by the authenticated user, oldest first
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.NoteResponse "Notes"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [get]
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}

	notes, err := h.notes.List(r.Context(), owner)
	if err != nil {
		h.writeError(w, r, err, "Failed to list notes")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewNoteResponses(notes))
}

// Update handles note updates
// @Summary Update a note
// @Description Replace title and content of a note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Param request body dto.NoteRequest true "Note data"
// @Success 200 {object} dto.MessageResponse "Note updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{id} [put]
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	title, content, ok := decodeNote(w, r)
	if !ok {
		return
	}

	if err := h.notes.Update(r.Context(), owner, id, title, content); err != nil {
		h.writeError(w, r, err, "Failed to update note")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Note updated"})
}

// Delete handles note deletion
// @Summary Delete a note
// @Description Delete a note owned by the authenticated user
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Note ID"
// @Success 200 {object} dto.MessageResponse "Note deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{id} [delete]
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	id, ok := noteID(w, r)
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), owner, id); err != nil {
		h.writeError(w, r, err, "Failed to delete note")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Note deleted"})
}

func (h *NotesHandler) owner(w http.ResponseWriter, r *http.Request) (models.UserID, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}
	return id, ok
}

// decodeNote reads a NoteRequest and rejects it when either field is absent.
// An empty content string is a valid note body.
func decodeNote(w http.ResponseWriter, r *http.Request) (title, content string, ok bool) {
	var req dto.NoteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return "", "", false
	}
	if req.Title == nil || req.Content == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "title and content are required")
		return "", "", false
	}
	return *req.Title, *req.Content, true
}

// noteID parses the {id} path parameter. Anything that is not a positive
// integer cannot name a note and is answered like a missing one.
func noteID(w http.ResponseWriter, r *http.Request) (models.NoteID, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeNoteNotFound(w)
		return 0, false
	}
	return models.NoteID(id), true
}

func writeNoteNotFound(w http.ResponseWriter) {
	utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Note not found")
}

func (h *NotesHandler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", err.Error())
	case errors.Is(err, common.ErrNotFound):
		writeNoteNotFound(w)
	default:
		writeInternalError(w, r, err, msg)
	}
}
