package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnTengye/contractstudio/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromGin, fromContext string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/api/contracts/types", func(c *gin.Context) {
		fromGin = GetRequestID(c)
		fromContext, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name     string
		incoming string
	}{
		{"generated", ""},
		{"propagated", "existing-request-id-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/contracts/types", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			responseID := w.Header().Get(RequestIDHeader)
			if tt.incoming != "" && responseID != tt.incoming {
				t.Errorf("Expected request ID '%s', got '%s'", tt.incoming, responseID)
			}
			if tt.incoming == "" {
				if _, err := uuid.Parse(responseID); err != nil {
					t.Errorf("Expected generated UUID, got '%s'", responseID)
				}
			}
			if fromGin != responseID {
				t.Errorf("Expected gin context id '%s', got '%s'", responseID, fromGin)
			}
			if fromContext != responseID {
				t.Errorf("Expected request context id '%s', got '%s'", responseID, fromContext)
			}
		})
	}
}

func TestGetRequestIDEmpty(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if requestID := GetRequestID(c); requestID != "" {
		t.Errorf("Expected empty string, got '%s'", requestID)
	}
}
