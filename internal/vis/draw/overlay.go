package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

// PixelGridZoom is the zoom from which the pixel grid is drawn.
const PixelGridZoom = 8

// Overlay colors
var (
	ColorFrame     = color.NRGBA{R: 80, G: 90, B: 100, A: 200}
	ColorPixelGrid = color.NRGBA{R: 40, G: 45, B: 50, A: 160}
	ColorAnchor    = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
)

// DrawFrame outlines the image bounds.
func DrawFrame(gtx layout.Context, p *state.Params, imgW, imgH int, col color.NRGBA) {
	h := float64(gtx.Constraints.Max.Y)
	x0, y0 := p.ImageToScreen(0, 0, h)
	x1, y1 := p.ImageToScreen(float64(imgW), float64(imgH), h)

	drawLine(gtx, x0, y0, x1, y0, 1, col)
	drawLine(gtx, x1, y0, x1, y1, 1, col)
	drawLine(gtx, x1, y1, x0, y1, 1, col)
	drawLine(gtx, x0, y1, x0, y0, 1, col)
}

// DrawPixelGrid draws pixel boundaries once zoomed in far enough.
func DrawPixelGrid(gtx layout.Context, p *state.Params, imgW, imgH int, col color.NRGBA) {
	if p.Zoom < PixelGridZoom {
		return
	}
	bounds := gtx.Constraints.Max
	h := float64(bounds.Y)

	// Visible image-space bounds
	minX, maxY := p.ScreenToImage(0, 0, h)
	maxX, minY := p.ScreenToImage(float64(bounds.X), h, h)

	startX := math.Max(math.Floor(minX), 0)
	endX := math.Min(math.Ceil(maxX), float64(imgW))
	startY := math.Max(math.Floor(minY), 0)
	endY := math.Min(math.Ceil(maxY), float64(imgH))

	for x := startX; x <= endX; x++ {
		sx, _ := p.ImageToScreen(x, 0, h)
		rect := image.Rect(int(sx), 0, int(sx)+1, bounds.Y)
		paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
	}
	for y := startY; y <= endY; y++ {
		_, sy := p.ImageToScreen(0, y, h)
		rect := image.Rect(0, int(sy), bounds.X, int(sy)+1)
		paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
	}
}

// DrawAnchor marks the image-space point a zoom drag is anchored on.
func DrawAnchor(gtx layout.Context, p *state.Params, imageX, imageY float64, col color.NRGBA) {
	sx, sy := p.ImageToScreen(imageX, imageY, float64(gtx.Constraints.Max.Y))
	DrawCircleOutline(gtx, float32(sx), float32(sy), 8, col, 2)
}

// DrawCircleOutline draws a circle outline.
func DrawCircleOutline(gtx layout.Context, centerX, centerY float32, radius float32, col color.NRGBA, strokeWidth float32) {
	// Outer circle
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(centerX+radius, centerY))

	segments := 24
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := centerX + radius*float32(math.Cos(angle))
		y := centerY + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	// Inner circle (hole)
	innerR := radius - strokeWidth
	if innerR < 0 {
		innerR = 0
	}
	path.Move(f32.Pt(centerX+innerR-path.Pos().X, centerY-path.Pos().Y))
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := centerX + innerR*float32(math.Cos(angle))
		y := centerY + innerR*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// drawLine draws a line as a quad of the given width.
func drawLine(gtx layout.Context, x1, y1, x2, y2 float64, width float32, col color.NRGBA) {
	dx := float32(x2 - x1)
	dy := float32(y2 - y1)
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	// Perpendicular for line width
	px := -dy / length * width / 2
	py := dx / length * width / 2

	ax, ay := float32(x1), float32(y1)
	bx, by := float32(x2), float32(y2)

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(ax+px, ay+py))
	path.LineTo(f32.Pt(bx+px, by+py))
	path.LineTo(f32.Pt(bx-px, by-py))
	path.LineTo(f32.Pt(ax-px, ay-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
