package draw

import (
	"testing"

	"gioui.org/f32"

	"github.com/elektrokombinacija/dicomview/internal/raster"
)

type countingInvalidator int

func (c *countingInvalidator) Invalidate() { *c++ }

func TestWindow(t *testing.T) {
	tests := []struct {
		value, width, center float64
		want                 uint8
	}{
		{0, 100, 50, 0},
		{100, 100, 50, 255},
		{50, 100, 50, 128},
		{-500, 100, 50, 0},
		{9000, 100, 50, 255},
		{49, 0, 50, 0},
		{50, 0, 50, 255},
	}
	for _, tt := range tests {
		got := Window(tt.value, tt.width, tt.center)
		if got != tt.want {
			t.Errorf("Window(%v, %v, %v) = %v, want %v", tt.value, tt.width, tt.center, got, tt.want)
		}
	}
}

func TestBuildLUTAppliesRescale(t *testing.T) {
	lut := BuildLUT(2, -100, 200, 100)
	if len(lut) != 65536 {
		t.Fatalf("len(lut) = %d", len(lut))
	}
	// 50*2-100 = 0 is the lower edge, 150*2-100 = 200 the upper edge.
	if lut[50] != 0 || lut[150] != 255 || lut[100] != 128 {
		t.Errorf("lut[50,100,150] = %v,%v,%v", lut[50], lut[100], lut[150])
	}
}

func TestImageRenderer(t *testing.T) {
	img := raster.New(2, 1)
	img.Pix[0] = 0
	img.Pix[1] = 1000

	var inv countingInvalidator
	r := NewImageRenderer(img, &inv)
	r.SetWindow(1000, 500)

	g := r.Gray()
	if g.Pix[0] != 0 || g.Pix[1] != 255 {
		t.Errorf("gray = %v, want [0 255]", g.Pix)
	}

	r.SetRescale(0.5, 0)
	g = r.Gray()
	if g.Pix[1] != 128 {
		t.Errorf("rescaled gray = %v, want 128", g.Pix[1])
	}

	r.Redraw()
	r.Redraw()
	if inv != 2 {
		t.Errorf("invalidations = %d, want 2", inv)
	}
}

func TestImageRendererTransform(t *testing.T) {
	img := raster.New(100, 50)
	r := NewImageRenderer(img, nil)
	r.SetZoom(2, 2)
	r.SetPan(10, 20)

	tr := r.Transform(600)

	// Image top-left lands at (panX, canvasH - (imgH*zoom + panY)).
	got := tr.Transform(f32.Pt(0, 0))
	if got != f32.Pt(10, 480) {
		t.Errorf("top-left -> %v, want (10, 480)", got)
	}
	// Image bottom-left lands panY above the canvas bottom.
	got = tr.Transform(f32.Pt(0, 50))
	if got != f32.Pt(10, 580) {
		t.Errorf("bottom-left -> %v, want (10, 580)", got)
	}
}
