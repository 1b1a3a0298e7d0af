package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenRequestID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenRequestID = GetRequestID(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.NewNop().Sugar())(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.handlerBody, string(bodyBytes))

			// the header and the context carry the same generated id
			reqID := rr.Header().Get("X-Request-ID")
			assert.NotEmpty(t, reqID)
			assert.Equal(t, reqID, seenRequestID)
		})
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, GetRequestID(req.Context()))
}
