package circlecrop

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame draw timings. Only populated in debug mode.
type debugStats struct {
	imageTime      time.Duration
	overlayTime    time.Duration
	overlayUploads int
}

// SetDebugMode enables or disables per-frame draw timing logs. Output goes to
// the package logger at info level; see SetLogger.
func (c *Cropper) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog reports frame timings and the current transform.
func (c *Cropper) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	attrs := []any{
		slog.Duration("image", stats.imageTime),
		slog.Duration("overlay", stats.overlayTime),
		slog.Duration("total", stats.imageTime+stats.overlayTime),
		slog.Int("overlay_uploads", stats.overlayUploads),
		slog.Int("overlay_builds", c.overlay.builds),
	}
	if c.hasTransform {
		attrs = append(attrs,
			slog.Float64("scale", c.transform.Scale),
			slog.Float64("tx", c.transform.TranslateX),
			slog.Float64("ty", c.transform.TranslateY))
	}
	Logger().Info("frame", attrs...)
}
