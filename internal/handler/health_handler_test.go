package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubHealthChecker bool

func (s stubHealthChecker) Healthy(context.Context) bool { return bool(s) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name         string
		dbUp         bool
		wantDatabase string
	}{
		{
			name:         "Database connected",
			dbUp:         true,
			wantDatabase: "connected",
		},
		{
			name:         "Database down still reports 200",
			dbUp:         false,
			wantDatabase: "disconnected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.GET("/health", NewHealthHandler(stubHealthChecker(tt.dbUp)).Health)

			w := doJSON(t, router, http.MethodGet, "/health", nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body["status"] != "healthy" {
				t.Errorf("status field = %v, want healthy", body["status"])
			}
			if body["database"] != tt.wantDatabase {
				t.Errorf("database field = %v, want %v", body["database"], tt.wantDatabase)
			}
			if body["timestamp"] == nil {
				t.Error("timestamp missing")
			}
		})
	}
}
