package logs

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Alijeyrad/dochouse_backend/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewJSONWithBaseAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Environment = "production"
	cfg.Logging.Level = "info"
	cfg.Observability.ServiceName = "dochouse_backend"
	cfg.Observability.ServiceVersion = "1.0.0"

	var buf bytes.Buffer
	logger := newWithStdout(cfg, &buf)
	logger.Debug("hidden")
	logger.Info("appointment booked", "email", "a@x.com")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for k, want := range map[string]string{
		"msg":     "appointment booked",
		"service": "dochouse_backend",
		"version": "1.0.0",
		"env":     "production",
		"email":   "a@x.com",
	} {
		if rec[k] != want {
			t.Errorf("%s = %v, want %q", k, rec[k], want)
		}
	}
}

func TestLokiFanOut(t *testing.T) {
	var pushed []lokiPush
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/loki/api/v1/push" {
			t.Errorf("path = %s", r.URL.Path)
		}
		user, pass, _ := r.BasicAuth()
		if user != "u" || pass != "p" {
			t.Errorf("basic auth = %q/%q", user, pass)
		}
		body, _ := io.ReadAll(r.Body)
		var p lokiPush
		if err := json.Unmarshal(body, &p); err != nil {
			t.Errorf("unmarshal push: %v", err)
		}
		pushed = append(pushed, p)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Server.Environment = "staging"
	cfg.Observability.ServiceName = "dochouse_backend"
	cfg.Logging.Output.Stdout = true
	cfg.Logging.Output.Loki = config.LokiConfig{Enabled: true, Endpoint: srv.URL + "/", Username: "u", Password: "p"}

	var buf bytes.Buffer
	logger := newWithStdout(cfg, &buf)
	logger.Warn("mongo ping slow")

	if !strings.Contains(buf.String(), "mongo ping slow") {
		t.Errorf("stdout missing record: %q", buf.String())
	}
	if len(pushed) != 1 {
		t.Fatalf("loki pushes = %d, want 1", len(pushed))
	}
	stream := pushed[0].Streams[0]
	if stream.Stream["service"] != "dochouse_backend" || stream.Stream["env"] != "staging" {
		t.Errorf("labels = %v", stream.Stream)
	}
	if !strings.Contains(stream.Values[0][1], "mongo ping slow") {
		t.Errorf("line = %q", stream.Values[0][1])
	}
}
