package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/dto"
	"NOTES_BACK-END/internal/models"
)

type stubVerifier struct {
	tokens map[string]models.UserID
	seen   []string
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (models.UserID, error) {
	s.seen = append(s.seen, token)
	if id, ok := s.tokens[token]; ok {
		return id, nil
	}
	return 0, errors.Join(common.ErrUnauthenticated, errors.New("unknown token"))
}

func protected(t *testing.T, v TokenVerifier) (http.Handler, *models.UserID) {
	t.Helper()
	var got models.UserID
	h := AuthMiddleware(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, &got
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	v := &stubVerifier{tokens: map[string]models.UserID{"good": 5}}
	h, got := protected(t, v)

	for _, header := range []string{"Bearer good", "bearer good", "Bearer   good"} {
		req := httptest.NewRequest(http.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, header)
		assert.Equal(t, models.UserID(5), *got)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		wantMessage string
		verified    bool
	}{
		{"missing header", "", "Authorization header required", false},
		{"no scheme", "good", "Invalid authorization header format", false},
		{"wrong scheme", "Basic good", "Invalid authorization header format", false},
		{"extra parts", "Bearer good extra", "Invalid authorization header format", false},
		{"bearer only", "Bearer", "Invalid authorization header format", false},
		{"garbled token", "Bearer not-a-token", "Invalid token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubVerifier{tokens: map[string]models.UserID{"good": 5}}
			h := AuthMiddleware(v)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("next handler must not run")
			}))

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Unauthorized", body.Error)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.verified, len(v.seen) > 0)
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := UserIDFromContext(WithUserID(context.Background(), 8))
	assert.True(t, ok)
	assert.Equal(t, models.UserID(8), id)
}
