package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
	"cashbook/internal/validator"
)

// --- mock services ---

type mockAuthService struct {
	enabled bool
	loginFn func(password string) (string, time.Time, error)
}

func (m *mockAuthService) Enabled() bool { return m.enabled }

func (m *mockAuthService) Login(password string) (string, time.Time, error) {
	if m.loginFn != nil {
		return m.loginFn(password)
	}
	return "token", time.Now().Add(time.Hour), nil
}

type auditEntry struct {
	action       string
	resourceType string
	resourceID   string
}

type mockAuditService struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (m *mockAuditService) Log(_ context.Context, action, resourceType, resourceID, _ string, _ map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, auditEntry{action: action, resourceType: resourceType, resourceID: resourceID})
}

func (m *mockAuditService) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, len(m.entries))
	for i, e := range m.entries {
		actions[i] = e.action
	}
	return actions
}

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns 200 with token", func(t *testing.T) {
		expires := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
		authSvc := &mockAuthService{
			enabled: true,
			loginFn: func(password string) (string, time.Time, error) {
				if password != "hunter2" {
					t.Errorf("unexpected password %q", password)
				}
				return "signed-token", expires, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"hunter2"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["token"] != "signed-token" {
			t.Errorf("expected token signed-token, got %v", result["token"])
		}
		if result["expires_at"] != "2026-10-18T12:00:00Z" {
			t.Errorf("unexpected expires_at %v", result["expires_at"])
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "LOGIN" {
			t.Errorf("expected LOGIN audit entry, got %v", got)
		}
	})

	t.Run("returns 400 on missing password", func(t *testing.T) {
		r := setupAuthRouter(NewAuthHandler(&mockAuthService{enabled: true}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 on wrong password", func(t *testing.T) {
		authSvc := &mockAuthService{
			enabled: true,
			loginFn: func(string) (string, time.Time, error) {
				return "", time.Time{}, apperrors.ErrInvalidCredentials
			},
		}
		audit := &mockAuditService{}
		r := setupAuthRouter(NewAuthHandler(authSvc, audit))

		rec := doRequest(r, "POST", "/auth/login", `{"password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
		if got := audit.actions(); len(got) != 1 || got[0] != "LOGIN_FAILED" {
			t.Errorf("expected LOGIN_FAILED audit entry, got %v", got)
		}
	})
}
