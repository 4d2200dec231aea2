package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AnTengye/contractstudio/config"
	"github.com/AnTengye/contractstudio/middleware"
	"github.com/AnTengye/contractstudio/model"
	"github.com/AnTengye/contractstudio/service"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			TokenExpireHours: 24,
		},
		Users: []config.User{
			{Username: "ana", Password: "pass-a", Tenant: "studio-a"},
			{Username: "bruno", Password: "pass-b", Tenant: "studio-b"},
			{Username: "orphan", Password: "pass-o"},
		},
	}
}

// newAuthRouter mounts login and the tenant-scoped preset routes the way
// main wires them.
func newAuthRouter(cfg *config.Config) *gin.Engine {
	authHandler := NewAuthHandler(cfg)
	presetHandler := NewPresetHandler(service.NewPresetStore(10))

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	protected.GET("/auth/me", authHandler.GetCurrentUser)
	protected.GET("/presets", presetHandler.List)
	protected.POST("/presets", presetHandler.Create)
	return router
}

func login(t *testing.T, router *gin.Engine, username, password string) LoginResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	w := postJSON(router, "/api/auth/login", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("Login as %s: expected status 200, got %d", username, w.Code)
	}
	var response LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	return response
}

func authorized(method, path, token string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthHandlerLogin(t *testing.T) {
	router := newAuthRouter(testAuthConfig())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedTenant string
	}{
		{"valid login", `{"username": "ana", "password": "pass-a"}`, http.StatusOK, "studio-a"},
		{"other tenant", `{"username": "bruno", "password": "pass-b"}`, http.StatusOK, "studio-b"},
		{"unknown user", `{"username": "carla", "password": "pass-a"}`, http.StatusUnauthorized, ""},
		{"wrong password", `{"username": "ana", "password": "pass-b"}`, http.StatusUnauthorized, ""},
		{"user without tenant", `{"username": "orphan", "password": "pass-o"}`, http.StatusForbidden, ""},
		{"missing password", `{"username": "ana"}`, http.StatusBadRequest, ""},
		{"invalid json", "invalid json", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/auth/login", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response LoginResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if response.Token == "" {
				t.Error("Expected token in response")
			}
			if response.Tenant != tt.expectedTenant {
				t.Errorf("Expected tenant '%s', got '%s'", tt.expectedTenant, response.Tenant)
			}
			if _, err := time.Parse(time.RFC3339, response.ExpiresAt); err != nil {
				t.Errorf("Expected RFC3339 expiry, got '%s'", response.ExpiresAt)
			}
		})
	}
}

func TestLoginTokenScopesPresetsByTenant(t *testing.T) {
	router := newAuthRouter(testAuthConfig())
	ana := login(t, router, "ana", "pass-a")
	bruno := login(t, router, "bruno", "pass-b")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authorized("POST", "/api/presets", ana.Token, []byte(`{"description": "Diária de filmagem", "unit_price": 1500}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	tests := []struct {
		name     string
		token    string
		expected int
	}{
		{"owner tenant sees preset", ana.Token, 1},
		{"other tenant sees nothing", bruno.Token, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authorized("GET", "/api/presets", tt.token, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", w.Code)
			}

			var response map[string][]model.BudgetItem
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if len(response["presets"]) != tt.expected {
				t.Errorf("Expected %d presets, got %d", tt.expected, len(response["presets"]))
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newAuthRouter(testAuthConfig())

	tests := []struct {
		name  string
		token string
	}{
		{"no token", ""},
		{"garbage token", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, authorized("GET", "/api/presets", tt.token, nil))
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", w.Code)
			}
		})
	}
}

func TestAuthHandlerGetCurrentUser(t *testing.T) {
	router := newAuthRouter(testAuthConfig())
	bruno := login(t, router, "bruno", "pass-b")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authorized("GET", "/api/auth/me", bruno.Token, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["username"] != "bruno" {
		t.Errorf("Expected username 'bruno', got '%s'", response["username"])
	}
	if response["tenant"] != "studio-b" {
		t.Errorf("Expected tenant 'studio-b', got '%s'", response["tenant"])
	}
}
