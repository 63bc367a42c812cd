package interact

import (
	"math"

	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

// Sensitivity constants.
const (
	WindowStep = 15  // Window units per screen pixel
	ZoomStep   = 100 // Screen pixels per 1.0 of zoom
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// AdjustWindow changes width with horizontal motion and center with
// vertical motion; moving up brightens.
func AdjustWindow(p *state.Params, dx, dy float64) {
	p.WindowWidth = clamp(p.WindowWidth+dx*WindowStep, 0, state.MaxWindow)
	p.WindowCenter = clamp(p.WindowCenter-dy*WindowStep, 0, state.MaxWindow)
}

// AdjustPan translates the image. Image-space Y points up, so screen dy
// is inverted.
func AdjustPan(p *state.Params, dx, dy float64) {
	p.PanY = clampPan(p.PanY-dy, p.Zoom)
	p.PanX = clampPan(p.PanX+dx, p.Zoom)
}

// AdjustZoom scales by the dominant axis of motion, then places the
// image-space anchor at the canvas center.
func AdjustZoom(p *state.Params, anchor Point, canvasWidth, canvasHeight, dx, dy float64) {
	movement := -dy
	if math.Abs(dx) > math.Abs(dy) {
		movement = dx
	}
	p.Zoom = clamp(p.Zoom+movement/ZoomStep, 0, state.MaxZoom)

	p.PanX = clampPan(canvasWidth/2-anchor.X*p.Zoom, p.Zoom)
	p.PanY = clampPan(canvasHeight/2-anchor.Y*p.Zoom, p.Zoom)
}

func clampPan(v, zoom float64) float64 {
	return clamp(v, -state.PanLimit*zoom, state.PanLimit)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
