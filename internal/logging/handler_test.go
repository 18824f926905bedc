package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h)

	now := time.Now()
	logger.Info("field changed", "field", "zip", "to", "valid")

	output := buf.String()
	for _, want := range []string{"INFO", "field changed", "field=zip", "to=valid", now.Format(time.Kitchen)} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %q", want, output)
		}
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)
	logger := slog.New(h).With("form", "signup")

	logger.Info("message", "local", "val")

	output := buf.String()
	if !strings.Contains(output, "form=signup") {
		t.Errorf("expected common attribute in output, got: %q", output)
	}
	if !strings.Contains(output, "local=val") {
		t.Errorf("expected local attribute in output, got: %q", output)
	}
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, nil)).WithGroup("session")

	logger.Info("applied", "field", "zip")

	if !strings.Contains(buf.String(), "session.field=zip") {
		t.Errorf("expected grouped key in output, got: %q", buf.String())
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	ctx := t.Context()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Error("expected Info level to be disabled when min level is Warn")
	}
	if !h.Enabled(ctx, slog.LevelWarn) {
		t.Error("expected Warn level to be enabled")
	}
}

func TestHandler_NoTime(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "no time", 0)
	if err := h.Handle(t.Context(), r); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "INFO") {
		t.Errorf("expected output to start with level, got: %q", buf.String())
	}
}

func TestHandler_TraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	logger.Log(t.Context(), LevelTrace, "keystroke")

	if !strings.Contains(buf.String(), "TRACE") {
		t.Errorf("expected TRACE level label, got: %q", buf.String())
	}
}

func TestHandler_Redaction(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	logger.Info("input", "password", "hunter22", "Card_Number", "4111111111111111", "zip", "12345")

	output := buf.String()
	if strings.Contains(output, "hunter22") {
		t.Error("password value should be redacted")
	}
	if !strings.Contains(output, "password=****er22") {
		t.Errorf("expected masked password, got: %q", output)
	}
	if !strings.Contains(output, "Card_Number=****1111") {
		t.Errorf("expected masked card number, got: %q", output)
	}
	if !strings.Contains(output, "zip=12345") {
		t.Errorf("non-secret value should be untouched, got: %q", output)
	}
}
