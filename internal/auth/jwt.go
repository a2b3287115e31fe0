// Package auth issues and validates the signed bearer tokens handed out at
// login. Tokens are stateless HS256 JWTs: the subject carries the user id
// and nothing is stored server-side.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/config"
	"NOTES_BACK-END/internal/models"
)

// Claims represents the claims in the JWT token
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens with a single secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager from the JWT configuration
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.AccessTokenTTL,
		now:    time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// GenerateToken generates a JWT token for the given user
func (m *TokenManager) GenerateToken(userID models.UserID) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			// jti makes every token distinct; it is not checked on verify.
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates a JWT token and returns the user id it was issued
// for. Every failure is reported as common.ErrUnauthenticated; the cause is
// kept in the chain for logging.
func (m *TokenManager) ValidateToken(tokenString string) (models.UserID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, errors.Join(common.ErrUnauthenticated, err)
	}
	if !token.Valid {
		return 0, common.ErrUnauthenticated
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", common.ErrUnauthenticated, claims.Subject)
	}

	return models.UserID(id), nil
}
