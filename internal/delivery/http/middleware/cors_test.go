package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const allowedOrigin = "https://actforbd.web.app"

func TestCORS(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		origin        string
		preflight     bool
		wantStatus    int
		wantAllowed   bool
		wantNextCalls bool
	}{
		{name: "allowed origin simple request", method: http.MethodGet, origin: allowedOrigin, wantStatus: http.StatusOK, wantAllowed: true, wantNextCalls: true},
		{name: "other origin simple request", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK, wantNextCalls: true},
		{name: "no origin", method: http.MethodGet, wantStatus: http.StatusOK, wantNextCalls: true},
		{name: "allowed preflight", method: http.MethodOptions, origin: allowedOrigin, preflight: true, wantStatus: http.StatusNoContent, wantAllowed: true},
		{name: "rejected preflight", method: http.MethodOptions, origin: "https://evil.example", preflight: true, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})
			handler := CORS([]string{allowedOrigin + "/"}, next)

			req := httptest.NewRequest(tt.method, "http://test/events", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalls, nextCalled)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.preflight && tt.wantAllowed {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
			assert.Contains(t, rr.Header().Values("Vary"), "Origin")
		})
	}
}
