package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marisol/talentdesk/internal/server/ratelimit"
)

// These tests cover the request parsing and validation paths that reject a
// request before any backing store is touched, so a zero-value Server works.

func TestHandleHealth(t *testing.T) {
	s := &Server{}

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRoutes_UpdateMethods(t *testing.T) {
	s := &Server{jwtService: newTestJWTService()}
	mux := http.NewServeMux()
	s.routes(mux, t.TempDir(), "/uploads")

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"patch job requires a token", http.MethodPatch, "/jobs/64f1c0aa", http.StatusUnauthorized},
		{"put job is not registered", http.MethodPut, "/jobs/64f1c0aa", http.StatusMethodNotAllowed},
		{"patch interview requires a token", http.MethodPatch, "/interviews/64f1c0aa", http.StatusUnauthorized},
		{"put interview is not registered", http.MethodPut, "/interviews/64f1c0aa", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleSubmitApplication_BadRequests(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing name", `{"email": "jane@example.com", "position_id": "8a6e0804-2bd0-4672-b79d-d97027f9071a"}`},
		{"bad email", `{"name": "Jane", "email": "nope", "position_id": "8a6e0804-2bd0-4672-b79d-d97027f9071a"}`},
		{"position not a uuid", `{"name": "Jane", "email": "jane@example.com", "position_id": "abc"}`},
		{"temp id not a uuid", `{"name": "Jane", "email": "jane@example.com", "position_id": "8a6e0804-2bd0-4672-b79d-d97027f9071a", "temp_id": "abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.handleSubmitApplication(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleGetTemporaryCandidate_BadRequests(t *testing.T) {
	s := &Server{}

	t.Run("missing tempId", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/candidates/temporary", nil)
		rec := httptest.NewRecorder()
		s.handleGetTemporaryCandidate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("tempId not a uuid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/candidates/temporary?tempId=abc", nil)
		rec := httptest.NewRecorder()
		s.handleGetTemporaryCandidate(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleParseResume_NotMultipart(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodPost, "/resume-parser", strings.NewReader("plain body"))
	rec := httptest.NewRecorder()
	s.handleParseResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateApplication_BadRequests(t *testing.T) {
	s := &Server{}

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/applications/abc", strings.NewReader("{}"))
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		s.handleUpdateApplication(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/applications/8a6e0804-2bd0-4672-b79d-d97027f9071a", strings.NewReader(`{"status": "Ghosted"}`))
		req.SetPathValue("id", "8a6e0804-2bd0-4672-b79d-d97027f9071a")
		rec := httptest.NewRecorder()
		s.handleUpdateApplication(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleListApplications_BadFilters(t *testing.T) {
	s := &Server{}

	t.Run("bad position id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/applications?positionId=abc", nil)
		rec := httptest.NewRecorder()
		s.handleListApplications(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/applications?status=Ghosted", nil)
		rec := httptest.NewRecorder()
		s.handleListApplications(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCreateJob_BadRequests(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{"},
		{"missing title", `{"department": "Engineering", "location": "Remote", "type": "Full-time", "description": "x"}`},
		{"unknown type", `{"title": "X", "department": "Engineering", "location": "Remote", "type": "Gig", "description": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.handleCreateJob(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestHandleScheduleInterview_BadRequests(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodPost, "/interviews", strings.NewReader(`{"application_id": "abc"}`))
	rec := httptest.NewRecorder()
	s.handleScheduleInterview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractClientID(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.7:52100"
	assert.Equal(t, "203.0.113.7", s.extractClientID(req))

	req.RemoteAddr = "unix-socket"
	assert.Equal(t, "unix-socket", s.extractClientID(req))
}

func TestSetRateLimitHeaders(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.setRateLimitHeaders(rec, ratelimit.Info{
		Limit:     20,
		Remaining: 3,
		ResetTime: time.Unix(1700000000, 0),
	})

	assert.Equal(t, "20", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1700000000", rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimitResponse(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.rateLimitResponse(rec, ratelimit.Info{RetryAfter: 30 * time.Second})

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "31", rec.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limit_exceeded", body["error"])
}
