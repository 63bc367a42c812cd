// Package draw provides rendering functions for the viewer.
package draw

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/dicomview/internal/raster"
)

// Invalidator schedules a new frame. *app.Window satisfies it.
type Invalidator interface {
	Invalidate()
}

// Window maps a rescaled intensity to an 8-bit gray level. Values below
// the window are black, values above it white. A zero width thresholds
// at the center.
func Window(value, width, center float64) uint8 {
	if width <= 0 {
		if value >= center {
			return 255
		}
		return 0
	}
	lower := center - width/2
	v := (value - lower) / width
	v = math.Max(math.Min(v, 1), 0)
	return uint8(math.Round(v * 255))
}

// BuildLUT precomputes the display level of every possible sample.
func BuildLUT(slope, intercept, width, center float64) []uint8 {
	lut := make([]uint8, 1<<16)
	for i := range lut {
		lut[i] = Window(float64(i)*slope+intercept, width, center)
	}
	return lut
}

// ImageRenderer draws a raster with the current window, pan and zoom.
type ImageRenderer struct {
	img *raster.Image
	inv Invalidator

	slope, intercept float64
	width, center    float64
	panX, panY       float64
	zoomX, zoomY     float64

	gray  *image.Gray
	imgOp paint.ImageOp
	dirty bool
}

// NewImageRenderer creates a renderer for img. Redraw requests go to inv.
func NewImageRenderer(img *raster.Image, inv Invalidator) *ImageRenderer {
	return &ImageRenderer{
		img:   img,
		inv:   inv,
		slope: 1,
		zoomX: 1,
		zoomY: 1,
		dirty: true,
	}
}

// SetRescale sets the slope and intercept applied before windowing.
func (r *ImageRenderer) SetRescale(slope, intercept float64) {
	r.slope, r.intercept = slope, intercept
	r.dirty = true
}

// SetWindow sets the window width and center.
func (r *ImageRenderer) SetWindow(width, center float64) {
	if width == r.width && center == r.center {
		return
	}
	r.width, r.center = width, center
	r.dirty = true
}

// SetPan sets the image-space translation.
func (r *ImageRenderer) SetPan(x, y float64) {
	r.panX, r.panY = x, y
}

// SetZoom sets the scale on each axis.
func (r *ImageRenderer) SetZoom(x, y float64) {
	r.zoomX, r.zoomY = x, y
}

// Redraw schedules a frame.
func (r *ImageRenderer) Redraw() {
	if r.inv != nil {
		r.inv.Invalidate()
	}
}

// Gray returns the windowed 8-bit image, recomputing it if needed.
func (r *ImageRenderer) Gray() *image.Gray {
	if r.dirty {
		r.apply()
	}
	return r.gray
}

// apply rebuilds the display image. The previous image may still be
// referenced by an ImageOp, so it is replaced rather than modified.
func (r *ImageRenderer) apply() {
	lut := BuildLUT(r.slope, r.intercept, r.width, r.center)
	gray := image.NewGray(r.img.Bounds())
	for i, v := range r.img.Pix {
		gray.Pix[i] = lut[v]
	}
	r.gray = gray
	r.imgOp = paint.NewImageOp(r.gray)
	r.imgOp.Filter = paint.FilterNearest
	r.dirty = false
}

// Transform returns the image-to-canvas affine transform. The pan is
// measured from the canvas bottom-left to the image bottom-left.
func (r *ImageRenderer) Transform(canvasHeight float32) f32.Affine2D {
	zx, zy := float32(r.zoomX), float32(r.zoomY)
	top := canvasHeight - (float32(r.img.Height)*zy + float32(r.panY))
	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(zx, zy)).
		Offset(f32.Pt(float32(r.panX), top))
}

// Layout paints the image into the current constraints.
func (r *ImageRenderer) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, size.X, size.Y)).Push(gtx.Ops).Pop()

	if r.dirty {
		r.apply()
	}

	defer op.Affine(r.Transform(float32(size.Y))).Push(gtx.Ops).Pop()
	defer clip.Rect(r.img.Bounds()).Push(gtx.Ops).Pop()
	r.imgOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: size}
}
