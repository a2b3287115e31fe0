package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOTES_BACK-END/internal/dto"
)

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONResponse(rec, http.StatusCreated, map[string]int{"id": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":3}`, rec.Body.String())
}

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorResponse(rec, http.StatusNotFound, "Not found", "Note not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Not found", body.Error)
	assert.Equal(t, "Note not found", body.Message)
}

func TestDecodeJSONRequest(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantMsg string
	}{
		{name: "valid", body: `{"title":"a"}`},
		{name: "empty", body: ``, wantErr: true, wantMsg: "request body is empty"},
		{name: "malformed", body: `{"title":`, wantErr: true},
		{name: "wrong type", body: `{"title":5}`, wantErr: true},
		{name: "trailing object", body: `{"title":"a"}{"title":"b"}`, wantErr: true, wantMsg: "request body must contain a single JSON object"},
		{name: "too large", body: `{"title":"` + strings.Repeat("x", MaxRequestBodyBytes) + `"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var dst payload
			err := DecodeJSONRequest(rec, req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "a", dst.Title)
				assert.Zero(t, rec.Body.Len(), "nothing written on success")
				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Invalid request body", body.Error)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}
