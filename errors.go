package circlecrop

import "errors"

var (
	// ErrNoImageLoaded is returned when a crop is requested before a source
	// image has been set.
	ErrNoImageLoaded = errors.New("circlecrop: no image loaded")

	// ErrDegenerateViewport is returned when the viewport has a zero or
	// negative dimension. Overlay and transform rebuilds are deferred until a
	// valid size arrives.
	ErrDegenerateViewport = errors.New("circlecrop: degenerate viewport")

	// ErrInvalidScaleFactor is returned for non-positive or non-finite scale
	// factors. Such gestures are discarded and the transform is unchanged.
	ErrInvalidScaleFactor = errors.New("circlecrop: invalid scale factor")
)
