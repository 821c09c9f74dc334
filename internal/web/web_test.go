package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler_ServesUI(t *testing.T) {
	handler := Handler()

	tests := []struct {
		name string
		path string
	}{
		{"root serves index.html", "/"},
		{"explicit index.html", "/index.html"},
		{"unknown path falls back to index.html", "/whatever"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status=%d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Electronic Parts Inventory") {
				t.Fatalf("body does not look like the UI: %.80s", w.Body.String())
			}
		})
	}
}
