package state

import (
	"testing"

	"github.com/elektrokombinacija/dicomview/internal/raster"
)

func TestParamsReset(t *testing.T) {
	p := NewParams(1.5, -1024, 2223, 1112, 10, 20, 1.0)

	p.Slope = 3
	p.Intercept = 0
	p.WindowWidth = 9
	p.WindowCenter = 8
	p.Zoom = 7
	p.PanX = 6
	p.PanY = 5

	p.Reset()
	want := Snapshot{WindowWidth: 2223, WindowCenter: 1112, Zoom: 1, PanX: 10, PanY: 20}
	if got := p.Snapshot(); got != want {
		t.Errorf("after Reset got %+v, want %+v", got, want)
	}
	if p.Slope != 1.5 || p.Intercept != -1024 {
		t.Errorf("rescale not restored: slope=%v intercept=%v", p.Slope, p.Intercept)
	}

	// Reset is idempotent.
	p.Reset()
	if got := p.Snapshot(); got != want {
		t.Errorf("second Reset got %+v, want %+v", got, want)
	}
	if p.Initial() != want {
		t.Errorf("Initial() = %+v, want %+v", p.Initial(), want)
	}
}

func TestScreenImageRoundTrip(t *testing.T) {
	p := NewParams(1, 0, 100, 50, 30, -40, 2.5)

	tests := []struct{ x, y float64 }{
		{0, 0},
		{400, 300},
		{799, 599},
	}
	for _, tt := range tests {
		ix, iy := p.ScreenToImage(tt.x, tt.y, 600)
		sx, sy := p.ImageToScreen(ix, iy, 600)
		if diff(sx, tt.x) > 1e-9 || diff(sy, tt.y) > 1e-9 {
			t.Errorf("round trip (%v,%v) -> (%v,%v)", tt.x, tt.y, sx, sy)
		}
	}

	// Screen bottom-left is the image-space origin at identity.
	id := NewParams(1, 0, 1, 1, 0, 0, 1)
	ix, iy := id.ScreenToImage(0, 600, 600)
	if ix != 0 || iy != 0 {
		t.Errorf("ScreenToImage(0, 600) = (%v, %v), want (0, 0)", ix, iy)
	}
}

func TestProbe(t *testing.T) {
	img := raster.New(4, 4)
	img.Set(0, 3, 100) // bottom-left
	img.Set(3, 0, 200) // top-right

	st := NewState(img, NewParams(2, 10, 1, 1, 0, 0, 1), "test")

	tests := []struct {
		x, y   float64
		want   float64
		wantOK bool
	}{
		{0.5, 99.5, 210, true}, // canvas height 100, bottom row
		{3.5, 96.5, 410, true}, // top row of a 4px image
		{10, 50, 0, false},
		{-1, 99, 0, false},
	}
	for _, tt := range tests {
		got, ok := st.Probe(tt.x, tt.y, 100)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Probe(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
