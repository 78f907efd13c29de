package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	RecoveryMiddleware(testLogger())(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"An unexpected error occurred"}`, rr.Body.String())
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := LoggingMiddleware(testLogger())(next)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	_, err := uuid.Parse(rr.Header().Get(RequestIDHeader))
	assert.NoError(t, err, "a fresh request ID is generated")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allow list", func(t *testing.T) {
		h := CORSMiddleware([]string{"http://app.test"})(next)

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://app.test")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, "http://app.test", rr.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://evil.test")
		rr = httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		h := CORSMiddleware([]string{"*"})(next)

		req := httptest.NewRequest(http.MethodOptions, "/customers", nil)
		req.Header.Set("Origin", "http://any.test")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, mapErrorCodeToHTTPStatus(models.CodeInvalidPagination))
	assert.Equal(t, http.StatusBadRequest, mapErrorCodeToHTTPStatus(models.CodeUnsupportedSize))
	assert.Equal(t, http.StatusBadRequest, mapErrorCodeToHTTPStatus(models.CodeUnsupportedIndustry))
	assert.Equal(t, http.StatusInternalServerError, mapErrorCodeToHTTPStatus("SOMETHING_ELSE"))
}
