// Package service holds the business rules of the notes backend: account
// registration and login, token verification, and owner-scoped note
// operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/models"
)

const maxUsernameLength = 100

// UserStore is the credential store used by AuthService.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (models.UserID, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	GenerateToken(userID models.UserID) (string, error)
	ValidateToken(token string) (models.UserID, error)
}

// AuthService registers users, checks credentials and issues tokens.
type AuthService struct {
	users  UserStore
	tokens TokenIssuer
	cost   int

	// dummyHash is compared against when the username is unknown so that
	// both login failure paths pay for one bcrypt comparison.
	dummyHash []byte
}

// NewAuthService creates an AuthService hashing passwords at the given
// bcrypt cost.
func NewAuthService(users UserStore, tokens TokenIssuer, cost int) (*AuthService, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("notes-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return &AuthService{users: users, tokens: tokens, cost: cost, dummyHash: dummy}, nil
}

// Register creates an account. There is no uniqueness pre-check: a taken
// username is reported by the store as common.ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password string) (models.UserID, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return 0, fmt.Errorf("%w: username must be at most %d characters", common.ErrInvalidInput, maxUsernameLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, fmt.Errorf("%w: password must be at most 72 bytes", common.ErrInvalidInput)
		}
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return 0, common.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Int64("user_id", int64(id)).Str("username", username).Msg("User registered")
	return id, nil
}

// Login verifies the credentials and returns a signed token. Unknown user
// and wrong password both return common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Error().Err(err).Int64("user_id", int64(user.ID)).Msg("Stored password hash is unusable")
		}
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	return token, nil
}

// VerifyToken returns the user id carried by a valid, unexpired token.
func (s *AuthService) VerifyToken(_ context.Context, token string) (models.UserID, error) {
	id, err := s.tokens.ValidateToken(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrUnauthenticated, err)
	}
	return id, nil
}
