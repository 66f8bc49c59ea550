package circlecrop

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Export queues a labeled export of the cropped result, written at the end of
// the current frame's Draw call as a PNG in Options.ExportDir with a
// timestamped filename. Safe to call from Update or Draw.
func (c *Cropper) Export(label string) {
	c.exportQueue = append(c.exportQueue, label)
}

// flushExports writes the crop once for every queued label. Called at the end
// of Draw.
func (c *Cropper) flushExports() {
	if len(c.exportQueue) == 0 {
		return
	}
	defer func() { c.exportQueue = c.exportQueue[:0] }()

	img := c.CroppedResult()
	if img == nil {
		Logger().Warn("export skipped", "error", ErrNoImageLoaded, "labels", len(c.exportQueue))
		return
	}
	if err := os.MkdirAll(c.opts.ExportDir, 0o755); err != nil {
		Logger().Warn("export failed", "error", fmt.Errorf("mkdir %s: %w", c.opts.ExportDir, err))
		return
	}

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.exportQueue {
		path := filepath.Join(c.opts.ExportDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("export failed", "error", err)
			continue
		}
		Logger().Debug("exported crop", "path", path)
	}
}

// SaveResult writes the cropped result to path as PNG.
func (c *Cropper) SaveResult(path string) error {
	img := c.CroppedResult()
	if img == nil {
		return ErrNoImageLoaded
	}
	return writePNG(path, img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteResult(f, img); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
