package middelware

import (
	"bytes"
	"elevatorops-console/utils/logger"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggingRouter(buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewLoggingMiddleware(logger.NewLoggerWithOutput("debug", "json", buf))

	r := gin.New()
	r.Use(m.RequestID(), m.StructuredLogger(), m.Recovery())
	r.GET("/api/v1/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/v1/requests/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/api/v1/boom", func(c *gin.Context) { panic("nil elevator") })
	return r
}

func TestRequestIDIsIssuedOrReused(t *testing.T) {
	r := loggingRouter(&bytes.Buffer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "trace-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-42", w.Header().Get("X-Request-ID"))
}

func TestStructuredLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	r := loggingRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/requests/7?include=report", nil)
	req.Header.Set("X-Request-ID", "trace-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "/api/v1/requests/7", entry["path"])
	assert.Equal(t, "include=report", entry["query"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "trace-7", entry["request_id"])
}

func TestStructuredLoggerSkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	r := loggingRouter(&buf)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Empty(t, buf.String())
}

func TestRecoveryAnswersWithEnvelope(t *testing.T) {
	var buf bytes.Buffer
	r := loggingRouter(&buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.True(t, strings.Contains(buf.String(), "nil elevator"))
}
