package paas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cs2analytics/internal/config"
)

type fakePlatform struct {
	mu     sync.Mutex
	logins int
	logs   []CreateLogRequest
	auth   []string
}

func (f *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.logins++
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{
			"token":      "tok-1",
			"expires_at": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/api/v1/logs", func(w http.ResponseWriter, r *http.Request) {
		var req CreateLogRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		f.logs = append(f.logs, req)
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func TestNewClient_DisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewClient(config.PaaSConfig{BaseURL: "http://x"}))
	assert.Nil(t, NewClient(config.PaaSConfig{APIKey: "k"}))
}

func TestCreateLog_LogsInOnceAndDefaultsAgent(t *testing.T) {
	fp := &fakePlatform{}
	srv := httptest.NewServer(fp.handler())
	defer srv.Close()

	c := NewClient(config.PaaSConfig{BaseURL: srv.URL + "/", APIKey: "key"})
	require.NotNil(t, c)

	ctx := context.Background()
	require.NoError(t, c.CreateLog(ctx, CreateLogRequest{Action: "a", Level: "info"}))
	require.NoError(t, c.CreateLog(ctx, CreateLogRequest{Action: "b", Level: "info", Agent: "other"}))

	fp.mu.Lock()
	defer fp.mu.Unlock()
	assert.Equal(t, 1, fp.logins)
	require.Len(t, fp.logs, 2)
	assert.Equal(t, DefaultAgent, fp.logs[0].Agent)
	assert.Equal(t, "other", fp.logs[1].Agent)
	assert.Equal(t, "Bearer tok-1", fp.auth[0])
}

func TestWriteAuditMiddleware_OnlyWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fp := &fakePlatform{}
	srv := httptest.NewServer(fp.handler())
	defer srv.Close()

	c := NewClient(config.PaaSConfig{BaseURL: srv.URL, APIKey: "key", Agent: "cs2-test"})
	r := gin.New()
	r.Use(WriteAuditMiddleware(c, nil))
	r.GET("/api/teams", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/matches/refresh", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/teams", nil),
		httptest.NewRequest(http.MethodPost, "/api/matches/refresh", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	fp.mu.Lock()
	defer fp.mu.Unlock()
	require.Len(t, fp.logs, 1)
	assert.Equal(t, "cs2_http_write", fp.logs[0].Action)
	assert.Equal(t, "cs2-test", fp.logs[0].Agent)
	assert.Equal(t, "/api/matches/refresh", fp.logs[0].Details["path"])
}

func TestLogBestEffort_NoClientIsNoop(t *testing.T) {
	LogBestEffort(context.Background(), "x", "info", nil)
}

func TestLevelFromStatus(t *testing.T) {
	cases := map[int]string{200: "info", 404: "warn", 500: "error"}
	for status, want := range cases {
		assert.Equal(t, want, levelFromStatus(status))
	}
}
