package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/notion-to-github/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestInit_Routes(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "version", method: http.MethodGet, path: "/version", wantStatus: http.StatusOK},
		{name: "form", method: http.MethodGet, path: "/", wantStatus: http.StatusOK},
		{name: "convert with wrong method", method: http.MethodGet, path: "/convert", wantStatus: http.StatusNotFound},
		{name: "publish with wrong method", method: http.MethodPut, path: "/publish", wantStatus: http.StatusNotFound},
		{name: "version with wrong method", method: http.MethodPost, path: "/version", wantStatus: http.StatusNotFound},
		{name: "form action with wrong method", method: http.MethodGet, path: "/ui/convert", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
		{name: "convert with bad body", method: http.MethodPost, path: "/convert", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("not json"))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-from-client")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-from-client", rr.Header().Get(utils.TraceIDHeader))
	assert.Equal(t, testVersion, rr.Body.String())
}

func TestInit_CompressesWhenAccepted(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
}
