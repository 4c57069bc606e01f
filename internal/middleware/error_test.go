package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "cashbook/internal/errors"
)

func setupErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/fail", handler)
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("renders_app_error", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(apperrors.ErrDebtAlreadyPaid)
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
		}
		assertErrorCode(t, rec, "DEBT_ALREADY_PAID")
	})

	t.Run("hides_unexpected_error", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			_ = c.Error(errors.New("pq: connection refused to 10.0.0.5"))
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		assertErrorCode(t, rec, "INTERNAL_ERROR")
		if strings.Contains(rec.Body.String(), "10.0.0.5") {
			t.Errorf("internal detail leaked: %s", rec.Body.String())
		}
	})

	t.Run("leaves_written_response", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
			_ = c.Error(apperrors.Wrap(apperrors.ErrInternalServer, errors.New("late failure")))
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusAccepted)
		}
		if status, _ := parseBody(t, rec)["status"].(string); status != "queued" {
			t.Errorf("expected the handler's body, got %s", rec.Body.String())
		}
	})

	t.Run("no_error_passes_through", func(t *testing.T) {
		r := setupErrorRouter(func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest("GET", "/fail", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
