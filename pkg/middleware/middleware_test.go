package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewHTTPMiddleware(t *testing.T) {
	m := NewHTTPMiddleware(zap.NewNop())

	assert.NotNil(t, m)
	assert.Implements(t, (*HTTPMiddleware)(nil), m)
}

func TestRequestID(t *testing.T) {
	testCases := []struct {
		name        string
		headerValue string
	}{
		{name: "Generated when missing"},
		{name: "Kept from caller", headerValue: "req-123"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)

			var seen string
			router.GET("/test", NewHTTPMiddleware(zap.NewNop()).RequestID(), func(c *gin.Context) {
				seen = c.GetString(RequestIDContextKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tc.headerValue != "" {
				req.Header.Set(RequestIDHeader, tc.headerValue)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tc.headerValue != "" {
				assert.Equal(t, tc.headerValue, seen)
			}
		})
	}
}

func TestAccessLog(t *testing.T) {
	testCases := []struct {
		name              string
		status            int
		expectedToContain []string
	}{
		{
			name:   "Success logged at debug",
			status: http.StatusOK,
			expectedToContain: []string{
				`"level":"debug"`,
				`"msg":"request completed"`,
				`"http_method":"GET"`,
				`"http_path":"/test"`,
				`"status":200`,
			},
		},
		{
			name:   "Server error logged at warn",
			status: http.StatusBadGateway,
			expectedToContain: []string{
				`"level":"warn"`,
				`"status":502`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer
			core := zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(&buffer),
				zapcore.DebugLevel,
			)
			m := NewHTTPMiddleware(zap.New(core))

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.GET("/test", m.AccessLog(), func(c *gin.Context) {
				c.Status(tc.status)
			})
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			for _, expected := range tc.expectedToContain {
				assert.Contains(t, buffer.String(), expected)
			}
		})
	}
}

func TestCors(t *testing.T) {
	testCases := []struct {
		name           string
		allowOrigins   []string
		origin         string
		expectedStatus int
		expectedHeader string
	}{
		{
			name:           "Allowed origin",
			allowOrigins:   []string{"http://localhost:3000"},
			origin:         "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
			expectedHeader: "http://localhost:3000",
		},
		{
			name:           "Rejected origin",
			allowOrigins:   []string{"http://localhost:3000"},
			origin:         "http://evil.example",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Any origin when none configured",
			origin:         "http://evil.example",
			expectedStatus: http.StatusNoContent,
			expectedHeader: "*",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			_, router := gin.CreateTestContext(w)
			router.Use(NewHTTPMiddleware(zap.NewNop()).Cors(tc.allowOrigins))
			router.GET("/test", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodOptions, "/test", nil)
			req.Header.Set("Origin", tc.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, tc.expectedHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
