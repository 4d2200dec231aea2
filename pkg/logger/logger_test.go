package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestInitLevels(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
		warnSeen  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
		{"invalid", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			Init(&Config{Level: tt.level, Format: "text", Output: &buf})

			ctx := context.Background()
			Debug(ctx, "debug-line")
			Info(ctx, "info-line")
			Warn(ctx, "warn-line")

			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tt.debugSeen {
				t.Errorf("Expected debug visible=%v, got %v", tt.debugSeen, got)
			}
			if got := strings.Contains(out, "info-line"); got != tt.infoSeen {
				t.Errorf("Expected info visible=%v, got %v", tt.infoSeen, got)
			}
			if got := strings.Contains(out, "warn-line"); got != tt.warnSeen {
				t.Errorf("Expected warn visible=%v, got %v", tt.warnSeen, got)
			}
		})
	}
}

func TestInitJSONFormat(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(&Config{Level: "info", Format: "json", Output: &buf})

	ctx := WithIdentity(WithRequestID(context.Background(), "req-9"), "studio", "ana")
	Info(ctx, "contract archived", "document_id", "doc-1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON entry, got %q: %v", buf.String(), err)
	}

	expected := map[string]string{
		"msg":         "contract archived",
		"request_id":  "req-9",
		"tenant":      "studio",
		"username":    "ana",
		"document_id": "doc-1",
	}
	for key, want := range expected {
		if entry[key] != want {
			t.Errorf("Expected %s=%q, got %v", key, want, entry[key])
		}
	}
}

func TestWithContextEmpty(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(&Config{Level: "info", Format: "text", Output: &buf})

	Info(context.Background(), "no identity")

	out := buf.String()
	for _, key := range []string{"request_id=", "tenant=", "username="} {
		if strings.Contains(out, key) {
			t.Errorf("Did not expect %q without context values, got %s", key, out)
		}
	}
}

func TestErrorLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Init(&Config{Level: "error", Format: "text", Output: &buf})

	Error(WithRequestID(context.Background(), "req-123"), "failed to upload", "object", "t/1/video-service.html")

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "request_id=req-123") {
		t.Errorf("Expected error entry with request id, got %s", out)
	}
}
