package services

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cashbook/internal/middleware"
	"cashbook/internal/testutil"
)

const testSecret = "test-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("disabled_without_hash", func(t *testing.T) {
		svc := NewAuthService("", testSecret, time.Hour)
		if svc.Enabled() {
			t.Fatal("expected auth to be disabled")
		}

		_, _, err := svc.Login("anything")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("correct_password_issues_token", func(t *testing.T) {
		svc := NewAuthService(hashPassword(t, "hunter2"), testSecret, time.Hour)

		token, expiresAt, err := svc.Login("hunter2")
		testutil.AssertNoError(t, err)

		if token == "" {
			t.Fatal("expected a token")
		}
		if until := time.Until(expiresAt); until <= 59*time.Minute || until > time.Hour {
			t.Errorf("unexpected expiry in %v", until)
		}
		if _, err := middleware.ParseAccessToken(testSecret, token); err != nil {
			t.Errorf("issued token does not parse: %v", err)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		svc := NewAuthService(hashPassword(t, "hunter2"), testSecret, time.Hour)

		_, _, err := svc.Login("hunter3")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}
