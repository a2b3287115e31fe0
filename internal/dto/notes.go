package dto

import "NOTES_BACK-END/internal/models"

// NoteRequest is the body of note create and update requests. Both fields
// are pointers so an absent field can be told apart from an empty one.
type NoteRequest struct {
	Title   *string `json:"title" example:"Shopping"`
	Content *string `json:"content" example:"milk"`
}

// NoteResponse represents a note in API responses
type NoteResponse struct {
	ID      models.NoteID `json:"id" swaggertype:"integer" example:"1"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
}

// CreateNoteResponse is returned after a note is created
type CreateNoteResponse struct {
	Message string        `json:"message" example:"Note created"`
	ID      models.NoteID `json:"id" swaggertype:"integer" example:"1"`
}

// NewNoteResponses converts notes to their API form. The result is never nil
// so an empty list encodes as [].
func NewNoteResponses(notes []models.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, NoteResponse{ID: n.ID, Title: n.Title, Content: n.Content})
	}
	return out
}
