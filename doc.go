// Package circlecrop is a circular photo-crop widget for [Ebitengine].
//
// A [Cropper] shows a source image under a shaded overlay with a circular
// hole. The user pans and zooms the image behind the hole, and the crop is
// extracted as a square PNG whose outside-circle pixels are transparent.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	img, err := circlecrop.LoadImage("photo.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := circlecrop.New(circlecrop.Options{})
//	c.SetSourceImage(img)
//	if err := circlecrop.Run(c, circlecrop.RunConfig{
//		Title: "Avatar", Width: 480, Height: 480, Resizable: true,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, call [Cropper.OnViewportResized] from Layout and
// [Cropper.Update] and [Cropper.Draw] from your own [ebiten.Game].
//
// # Geometry
//
// The crop circle is centered in the viewport with radius
// min(width, height)/2.5. The image is placed by a [Transform], a uniform
// scale plus translation. Scale stays within [ScaleRange]: the minimum fits
// the image's longer side to the circle diameter and the maximum is twice
// that. After every gesture [ClampTransform] shifts the image so its
// bounding rectangle covers the circle's bounding square where the image
// is large enough to do so.
//
// # Input
//
// Mouse drag and single-touch drag pan. Two-finger pinch zooms about the
// pinch center, and the mouse wheel zooms about the cursor. A double tap or
// the R key animates back to the minimum scale. Gestures can also be sent
// directly with [Cropper.OnScaleGesture] and [Cropper.OnPanGesture], or
// scripted with [LoadTestScript].
//
// # Output
//
// [Cropper.CroppedResult] returns the crop as an [image.NRGBA] of side
// round(2r). [Cropper.CroppedResultEncoded] returns the same image as
// base64 PNG text, and [Cropper.Export] queues a PNG file.
//
// The crop is always the whole source image fitted to the circle. The live
// transform drives the preview only and is not applied by [Extract].
//
// # Logging
//
// The package is silent by default. Pass a [log/slog.Logger] to [SetLogger]
// to receive diagnostics.
//
// [Ebitengine]: https://ebitengine.org
package circlecrop
