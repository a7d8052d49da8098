package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"DentalDesk/database"

	"github.com/gin-gonic/gin"
)

type fakeFlusher struct {
	patterns []string
}

func (f *fakeFlusher) DeleteAll(ctx context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return nil
}

func openAdminTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHealthReportsAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := NewAdminHandler(openAdminTestStore(t), nil)
	router := gin.New()
	router.GET("/health", healthy.Health)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("healthy store: status = %d, want 200", rec.Code)
	}

	// An uncreatable path leaves the store unavailable.
	broken, _ := database.Open(filepath.Join(t.TempDir(), "missing", "test.db"))
	degraded := NewAdminHandler(broken, nil)
	router = gin.New()
	router.GET("/health", degraded.Health)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("degraded store: status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "database unavailable") {
		t.Errorf("degraded body = %s, want the unavailable message", rec.Body.String())
	}
}

func TestRestoreFlushesResetCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := openAdminTestStore(t)
	backupPath, err := store.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	flusher := &fakeFlusher{}
	handler := NewAdminHandler(store, flusher)
	router := gin.New()
	router.POST("/admin/restore", handler.Restore)

	body := strings.NewReader(`{"path": "` + backupPath + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/restore", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(flusher.patterns) != 1 || flusher.patterns[0] != "reset_code:*" {
		t.Errorf("flushed patterns = %v, want [reset_code:*]", flusher.patterns)
	}
}

func TestRestoreRequiresPath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	flusher := &fakeFlusher{}
	handler := NewAdminHandler(openAdminTestStore(t), flusher)
	router := gin.New()
	router.POST("/admin/restore", handler.Restore)

	req := httptest.NewRequest(http.MethodPost, "/admin/restore", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a missing path", rec.Code)
	}
	if len(flusher.patterns) != 0 {
		t.Error("codes must not be flushed when the restore is rejected")
	}
}
