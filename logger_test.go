package circlecrop

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLoggerSilentByDefault(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	captureLogs(t)
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("custom logger not installed")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestLoggerReportsRebuildsAndDiscards(t *testing.T) {
	buf := captureLogs(t)

	c := New(Options{})
	c.OnViewportResized(0, 0)
	c.OnViewportResized(300, 300)
	c.SetSourceImage(quadrantImage(600, 400))
	c.OnScaleGesture(-1, 0, 0)

	out := buf.String()
	for _, want := range []string{
		"viewport resize deferred",
		"overlay rebuilt",
		"transform reset",
		"gesture discarded",
		"kind=scale",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugLog(t *testing.T) {
	buf := captureLogs(t)
	c := newTestCropper(t)

	buf.Reset()
	c.debugLog(debugStats{overlayUploads: 1})
	if buf.Len() != 0 {
		t.Errorf("frame logged with debug mode off:\n%s", buf.String())
	}

	c.SetDebugMode(true)
	c.debugLog(debugStats{overlayUploads: 1})
	out := buf.String()
	if !strings.Contains(out, "msg=frame") || !strings.Contains(out, "overlay_uploads=1") || !strings.Contains(out, "scale=0.4") {
		t.Errorf("unexpected frame log:\n%s", out)
	}
}
