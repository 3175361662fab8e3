package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/baymax-health/internal/db"
	"github.com/BruksfildServices01/baymax-health/internal/middleware"
	"github.com/BruksfildServices01/baymax-health/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, gdb *gorm.DB, name, role string) *models.User {
	t.Helper()
	u := &models.User{
		Name:         name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, gdb.Create(u).Error)
	return u
}

// asUser stands in for AuthMiddleware in handler tests.
func asUser(u *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, u.ID)
		c.Set(middleware.ContextUserRole, u.Role)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type listBody[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type errorBody struct {
	Code  string `json:"error_code"`
	Error string `json:"error"`
}

// recordingCache is an in-memory reminder.PreferenceCache.
type recordingCache struct {
	mu          sync.Mutex
	invalidated []uint
}

func (c *recordingCache) Get(context.Context, uint) (*models.EmailPreferences, bool, error) {
	return nil, false, nil
}

func (c *recordingCache) Set(context.Context, uint, *models.EmailPreferences) error { return nil }

func (c *recordingCache) Invalidate(_ context.Context, userID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, userID)
	return nil
}

type stubSender struct {
	ok   bool
	sent []string
}

func (s *stubSender) SendTestEmail(_ context.Context, email, _ string) bool {
	s.sent = append(s.sent, email)
	return s.ok
}

func itoa(id uint) string {
	return fmt.Sprintf("%d", id)
}
