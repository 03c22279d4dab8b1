package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthController_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		checker       func() bool
		expectedRedis string
	}{
		{name: "redis not configured", checker: nil, expectedRedis: "disabled"},
		{name: "redis reachable", checker: func() bool { return true }, expectedRedis: "connected"},
		{name: "redis down", checker: func() bool { return false }, expectedRedis: "disconnected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/health", NewHealthController(tt.checker).Check)

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != "ok" {
				t.Errorf("expected status ok, got %s", resp.Status)
			}
			if resp.Redis != tt.expectedRedis {
				t.Errorf("expected redis %s, got %s", tt.expectedRedis, resp.Redis)
			}
		})
	}
}
