package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/taskflow-dev/taskflow/internal/auth"
	"github.com/taskflow-dev/taskflow/internal/handlers"
	"github.com/taskflow-dev/taskflow/internal/middleware"
	"github.com/taskflow-dev/taskflow/internal/models"
	"github.com/taskflow-dev/taskflow/internal/router"
	"github.com/taskflow-dev/taskflow/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBCounter int64

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	counter := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:taskflow_handlers_test_%d.db?mode=memory&cache=shared", counter)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.BoardColumn{},
		&models.Task{},
		&models.Epic{},
	))

	manager, err := auth.NewManager("test-secret")
	require.NoError(t, err)

	s := store.New(conn)
	hub := handlers.NewHub(nil)
	h := handlers.New(s, manager, hub, "")

	origins := []string{"http://localhost:5173"}
	return router.New(origins, h, middleware.RequireAuth(manager, s))
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader

	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func newRecorderFor(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// registerAndLogin creates the user and returns a valid access token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	payload := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, username, username+"@example.com", password)
	recorder := doRequest(t, r, http.MethodPost, "/api/register", payload, "")
	require.Equal(t, http.StatusCreated, recorder.Code)

	payload = fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	recorder = doRequest(t, r, http.MethodPost, "/api/login", payload, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	token, ok := decodeBody(t, recorder)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func createBoard(t *testing.T, r *gin.Engine, token, title string) map[string]interface{} {
	t.Helper()

	recorder := doRequest(t, r, http.MethodPost, "/api/boards", fmt.Sprintf(`{"title":%q}`, title), token)
	require.Equal(t, http.StatusCreated, recorder.Code)
	return decodeBody(t, recorder)
}
