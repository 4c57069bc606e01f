package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/middleware"
)

// authService authenticates the single owner against a bcrypt hash.
type authService struct {
	passwordHash []byte
	jwtSecret    string
	tokenTTL     time.Duration
}

// NewAuthService creates a new AuthServicer. An empty passwordHash disables
// authentication.
func NewAuthService(passwordHash, jwtSecret string, tokenTTL time.Duration) AuthServicer {
	return &authService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Enabled reports whether a password hash is configured.
func (s *authService) Enabled() bool {
	return len(s.passwordHash) > 0
}

// Login checks password and issues an access token.
func (s *authService) Login(password string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Authentication is not enabled")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := middleware.GenerateAccessToken(s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token, expiresAt, nil
}
