// Copyright (c) 2026 Meeple. All rights reserved.

package middleware_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardhaus/meeple/internal/platform/ctxutil"
	"github.com/boardhaus/meeple/internal/platform/middleware"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestRequestID_Generates checks that a correlation ID is minted, exposed in the
response header, and visible to downstream handlers via context.
*/
func TestRequestID_Generates(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/categories", nil)

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
}

/*
TestRequestID_PreservesClientID keeps a caller-provided correlation ID.
*/
func TestRequestID_PreservesClientID(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	request.Header.Set("X-Request-ID", "client-supplied-id")

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	assert.Equal(t, "client-supplied-id", recorder.Header().Get("X-Request-ID"))
}

/*
TestStructuredLogger_InjectsLogger provides a request-scoped logger downstream
and passes the response through untouched.
*/
func TestStructuredLogger_InjectsLogger(t *testing.T) {
	var hadLogger bool
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		hadLogger = ctxutil.GetLogger(request.Context()) != slog.Default()
		writer.WriteHeader(http.StatusTeapot)
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/users", nil)

	middleware.StructuredLogger(discardLogger())(next).ServeHTTP(recorder, request)

	assert.True(t, hadLogger)
	assert.Equal(t, http.StatusTeapot, recorder.Code)
}

/*
TestPanicRecovery converts a panic into the generic 500 body.
*/
func TestPanicRecovery(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)

	require.NotPanics(t, func() {
		middleware.PanicRecovery(discardLogger())(next).ServeHTTP(recorder, request)
	})

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Server error", body["msg"])
	assert.NotContains(t, recorder.Body.String(), "boom")
}

type devConfig struct{}

func (devConfig) IsDevelopment() bool { return true }

/*
TestCORS_Preflight answers OPTIONS pre-flight requests directly.
*/
func TestCORS_Preflight(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodOptions, "/api/reviews", nil)
	request.Header.Set("Origin", "http://localhost:3000")

	middleware.CORS(devConfig{})(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestRealIP prefers proxy headers over the socket address.
*/
func TestRealIP(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.RemoteAddr = "10.0.0.1:5000"

	assert.Equal(t, "10.0.0.1", middleware.RealIP(request))

	request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", middleware.RealIP(request))

	request.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", middleware.RealIP(request))
}
