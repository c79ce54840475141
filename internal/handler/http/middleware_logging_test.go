package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/notion-to-github/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "version",
			method: http.MethodGet,
			path:   "/version",
			status: http.StatusOK,
			body:   "1.2.3",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/version"`,
				`"status":200`,
				`"duration":`,
				`"size":5`,
			},
		},
		{
			name:   "rejected convert",
			method: http.MethodPost,
			path:   "/convert",
			status: http.StatusBadRequest,
			wantContains: []string{
				`"method":"POST"`,
				`"status":400`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			h.withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
