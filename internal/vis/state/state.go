// Package state manages the viewer state.
package state

import (
	"math"

	"github.com/elektrokombinacija/dicomview/internal/raster"
)

// State holds all viewer state: the image on screen and its view parameters.
type State struct {
	Image  *raster.Image
	Params *Params
	Source string
}

// NewState creates a new viewer state.
func NewState(img *raster.Image, params *Params, source string) *State {
	return &State{
		Image:  img,
		Params: params,
		Source: source,
	}
}

// Probe returns the rescaled intensity of the pixel under a canvas point.
func (s *State) Probe(screenX, screenY, canvasHeight float64) (value float64, ok bool) {
	if s.Image == nil || s.Params.Zoom == 0 {
		return 0, false
	}
	ix, iy := s.Params.ScreenToImage(screenX, screenY, canvasHeight)

	// Image space grows upward from the bottom row.
	col := int(math.Floor(ix))
	row := s.Image.Height - 1 - int(math.Floor(iy))

	v, ok := s.Image.At(col, row)
	if !ok {
		return 0, false
	}
	return float64(v)*s.Params.Slope + s.Params.Intercept, true
}
