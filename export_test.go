package circlecrop

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-pan", "after-pan"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExportQueueAppend(t *testing.T) {
	c := New(Options{})
	c.Export("a")
	c.Export("b")
	c.Export("c")
	if len(c.exportQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(c.exportQueue))
	}
	if c.exportQueue[0] != "a" || c.exportQueue[1] != "b" || c.exportQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", c.exportQueue)
	}
}

func TestExportDirDefault(t *testing.T) {
	c := New(Options{})
	if c.Options().ExportDir != "exports" {
		t.Errorf("ExportDir = %q, want %q", c.Options().ExportDir, "exports")
	}
}

func TestFlushExportsWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := New(Options{ExportDir: dir})
	c.OnViewportResized(300, 300)
	c.SetSourceImage(quadrantImage(600, 400))

	c.Export("first try")
	c.Export("second")
	c.flushExports()

	if len(c.exportQueue) != 0 {
		t.Errorf("queue not drained: %v", c.exportQueue)
	}
	for _, suffix := range []string{"_first_try.png", "_second.png"} {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+suffix))
		if err != nil {
			t.Fatal(err)
		}
		if len(matches) != 1 {
			t.Fatalf("files matching %q = %v, want 1", suffix, matches)
		}
		f, err := os.Open(matches[0])
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", matches[0], err)
		}
		if img.Bounds().Dx() != 240 || img.Bounds().Dy() != 240 {
			t.Errorf("%s bounds = %v, want 240x240", matches[0], img.Bounds())
		}
	}
}

func TestFlushExportsWithoutImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	c := New(Options{ExportDir: dir})
	c.OnViewportResized(300, 300)
	c.Export("nothing")
	c.flushExports()

	if len(c.exportQueue) != 0 {
		t.Error("queue not drained")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("export dir created without an image (err = %v)", err)
	}
}

func TestSaveResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	c := New(Options{})
	if err := c.SaveResult(path); !errors.Is(err, ErrNoImageLoaded) {
		t.Fatalf("err = %v, want ErrNoImageLoaded", err)
	}

	c.OnViewportResized(200, 100)
	c.SetSourceImage(quadrantImage(50, 50))
	if err := c.SaveResult(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 80 {
		t.Errorf("size = %dx%d, want 80x80", cfg.Width, cfg.Height)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.png")
	if err := writePNG(path, quadrantImage(4, 4)); err == nil {
		t.Error("expected error for missing directory")
	}
}
