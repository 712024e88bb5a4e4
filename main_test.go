package main

import (
	"net/http"
	"net/http/httptest"
	"postlikes/config"
	"postlikes/db"
	"postlikes/models"
	"postlikes/utils"
	"strings"
	"testing"
)

func TestNewRouter(t *testing.T) {
	instance, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error = %v", err)
	}
	db.Instance = instance
	defer db.Close()
	if err = models.Init(); err != nil {
		t.Fatalf("models.Init() error = %v", err)
	}
	oldDebug, oldMetrics := config.DEBUG_MODE, config.METRICS_ENABLED
	defer func() { config.DEBUG_MODE, config.METRICS_ENABLED = oldDebug, oldMetrics }()
	config.DEBUG_MODE, config.METRICS_ENABLED = true, true
	router := NewRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		wantCode int
	}{
		{"create", http.MethodPost, "/posts", `{"post_str_id":"p1","content":"hi"}`, http.StatusCreated},
		{"like", http.MethodPost, "/posts/p1/like", `{"user_id_str":"u1"}`, http.StatusCreated},
		{"count", http.MethodGet, "/posts/p1/likes", "", http.StatusOK},
		{"top", http.MethodGet, "/posts/top", "", http.StatusOK},
		{"liked posts", http.MethodGet, "/users/u1/liked-posts", "", http.StatusOK},
		{"unlike", http.MethodDelete, "/posts/p1/like", `{"user_id_str":"u1"}`, http.StatusOK},
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d, body %s", w.Code, tt.wantCode, w.Body.String())
			}
			if w.Header().Get(utils.RequestIDHeader) == "" {
				t.Errorf("missing %s header", utils.RequestIDHeader)
			}
		})
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "likes_changed_total") {
		t.Errorf("metrics endpoint: status %d", w.Code)
	}
}
