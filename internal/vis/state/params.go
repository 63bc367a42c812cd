package state

// Bounds enforced on the adjustable view parameters.
const (
	MaxWindow = 65535 // Upper bound for window width and center
	MaxZoom   = 10    // Upper bound for zoom
	PanLimit  = 512   // Pan offsets stay within [-PanLimit*zoom, PanLimit]
)

// Params holds the windowing, pan and zoom values of one viewer session.
// The values passed to NewParams are kept so Reset can restore them.
type Params struct {
	Slope     float64 // Rescale slope applied to raw samples
	Intercept float64 // Rescale intercept applied to raw samples

	WindowWidth  float64 // Contrast
	WindowCenter float64 // Brightness

	PanX float64 // Image-space translation, origin bottom-left
	PanY float64
	Zoom float64 // Scale factor (1.0 = one image pixel per canvas pixel)

	initial                        Snapshot
	initialSlope, initialIntercept float64
}

// Snapshot is a copy of the five adjustable parameters.
type Snapshot struct {
	WindowWidth  float64
	WindowCenter float64
	Zoom         float64
	PanX         float64
	PanY         float64
}

// NewParams creates parameters with the given initial values.
func NewParams(slope, intercept, ww, wc, panX, panY, zoom float64) *Params {
	p := &Params{
		initial: Snapshot{
			WindowWidth:  ww,
			WindowCenter: wc,
			Zoom:         zoom,
			PanX:         panX,
			PanY:         panY,
		},
		initialSlope:     slope,
		initialIntercept: intercept,
	}
	p.Reset()
	return p
}

// Reset restores every field to the value given at construction.
func (p *Params) Reset() {
	p.Slope = p.initialSlope
	p.Intercept = p.initialIntercept
	p.WindowWidth = p.initial.WindowWidth
	p.WindowCenter = p.initial.WindowCenter
	p.Zoom = p.initial.Zoom
	p.PanX = p.initial.PanX
	p.PanY = p.initial.PanY
}

// Snapshot returns the current adjustable values.
func (p *Params) Snapshot() Snapshot {
	return Snapshot{
		WindowWidth:  p.WindowWidth,
		WindowCenter: p.WindowCenter,
		Zoom:         p.Zoom,
		PanX:         p.PanX,
		PanY:         p.PanY,
	}
}

// Initial returns the adjustable values given at construction.
func (p *Params) Initial() Snapshot {
	return p.initial
}

// ScreenToImage converts a canvas point (origin top-left) to image space
// (origin bottom-left) using the current pan and zoom.
func (p *Params) ScreenToImage(screenX, screenY, canvasHeight float64) (imageX, imageY float64) {
	imageX = (screenX - p.PanX) / p.Zoom
	imageY = (canvasHeight - screenY - p.PanY) / p.Zoom
	return
}

// ImageToScreen converts an image-space point back to canvas coordinates.
func (p *Params) ImageToScreen(imageX, imageY, canvasHeight float64) (screenX, screenY float64) {
	screenX = imageX*p.Zoom + p.PanX
	screenY = canvasHeight - (imageY*p.Zoom + p.PanY)
	return
}
