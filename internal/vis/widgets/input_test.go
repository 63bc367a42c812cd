package widgets

import (
	"image"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/dicomview/internal/raster"
	"github.com/elektrokombinacija/dicomview/internal/vis/draw"
	"github.com/elektrokombinacija/dicomview/internal/vis/interact"
	"github.com/elektrokombinacija/dicomview/internal/vis/observer"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		buttons pointer.Buttons
		mods    key.Modifiers
		primary interact.Mode
		want    interact.Mode
	}{
		{pointer.ButtonPrimary, 0, interact.ModeWindowLevel, interact.ModeWindowLevel},
		{pointer.ButtonTertiary, 0, interact.ModeWindowLevel, interact.ModeZoom},
		{pointer.ButtonSecondary, 0, interact.ModeWindowLevel, interact.ModePan},
		{pointer.ButtonPrimary, key.ModCtrl, interact.ModeWindowLevel, interact.ModeZoom},
		{pointer.ButtonPrimary, key.ModShift, interact.ModeWindowLevel, interact.ModePan},
		{pointer.ButtonPrimary, 0, interact.ModePan, interact.ModePan},
		{pointer.ButtonSecondary, key.ModCtrl, interact.ModeWindowLevel, interact.ModePan},
		{pointer.Buttons(1 << 7), 0, interact.ModeWindowLevel, interact.ModeNone},
		{0, 0, interact.ModeWindowLevel, interact.ModeNone},
	}

	for _, tt := range tests {
		got := ModeFor(tt.buttons, tt.mods, tt.primary)
		if got != tt.want {
			t.Errorf("ModeFor(%v, %v, %v) = %v, want %v", tt.buttons, tt.mods, tt.primary, got, tt.want)
		}
	}
}

func TestClickCounter(t *testing.T) {
	var c ClickCounter
	p := f32.Pt(100, 100)

	if c.Press(0, p) {
		t.Fatal("first press reported as double click")
	}
	if !c.Press(200*time.Millisecond, p) {
		t.Fatal("second press within interval not a double click")
	}
	// A third press starts a new sequence.
	if c.Press(300*time.Millisecond, p) {
		t.Error("third press reported as double click")
	}
	if c.Press(time.Second, p) {
		t.Error("slow second press reported as double click")
	}
	if c.Press(time.Second+100*time.Millisecond, f32.Pt(150, 100)) {
		t.Error("distant second press reported as double click")
	}
}

type viewportFixture struct {
	params   *state.Params
	viewport *Viewport
	gesture  *interact.Gesture
	readout  *Readout
}

func newViewportFixture(t *testing.T) *viewportFixture {
	t.Helper()
	img := raster.New(64, 64)
	params := state.NewParams(1, 0, 2223, 1112, 0, 0, 1)
	st := state.NewState(img, params, "test")

	renderer := draw.NewImageRenderer(img, nil)
	vp := NewViewport(st, renderer)
	vp.size = image.Pt(800, 600)
	readout := NewReadout(st, vp)

	display, err := observer.NewDisplay(renderer, readout)
	if err != nil {
		t.Fatal(err)
	}
	g, err := interact.NewGesture(params, display, vp)
	if err != nil {
		t.Fatal(err)
	}
	vp.Bind(g)

	return &viewportFixture{params: params, viewport: vp, gesture: g, readout: readout}
}

func TestViewportDrag(t *testing.T) {
	f := newViewportFixture(t)
	vp := f.viewport

	vp.handlePointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(100, 100)})
	if f.gesture.Mode() != interact.ModeWindowLevel {
		t.Fatalf("mode = %v, want window/level", f.gesture.Mode())
	}

	vp.handlePointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: f32.Pt(110, 95)})
	if f.params.WindowWidth != 2373 || f.params.WindowCenter != 1187 {
		t.Errorf("ww/wc = %v/%v, want 2373/1187", f.params.WindowWidth, f.params.WindowCenter)
	}
	if got := f.readout.Current().WindowWidth; got != "2373" {
		t.Errorf("readout ww = %q, want 2373", got)
	}

	// Deltas are measured from the previous event, not from the press.
	vp.handlePointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: f32.Pt(111, 95)})
	if f.params.WindowWidth != 2388 {
		t.Errorf("ww = %v, want 2388", f.params.WindowWidth)
	}

	vp.handlePointerEvent(pointer.Event{Kind: pointer.Cancel})
	if f.gesture.Active() {
		t.Error("gesture still active after cancel")
	}
}

func TestViewportDoubleClickResets(t *testing.T) {
	f := newViewportFixture(t)
	vp := f.viewport

	vp.handlePointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonSecondary, Position: f32.Pt(10, 10), Time: 0})
	vp.handlePointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonSecondary, Position: f32.Pt(40, 30)})
	vp.handlePointerEvent(pointer.Event{Kind: pointer.Release, Position: f32.Pt(40, 30)})
	if f.params.PanX != 30 || f.params.PanY != -20 {
		t.Fatalf("pan = %v,%v, want 30,-20", f.params.PanX, f.params.PanY)
	}

	vp.handlePointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 50), Time: time.Second})
	vp.handlePointerEvent(pointer.Event{Kind: pointer.Release, Position: f32.Pt(50, 50), Time: time.Second + 50*time.Millisecond})
	vp.handlePointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Pt(50, 50), Time: time.Second + 150*time.Millisecond})

	if got, want := f.params.Snapshot(), f.params.Initial(); got != want {
		t.Errorf("after double click got %+v, want %+v", got, want)
	}
	if f.gesture.Active() {
		t.Error("double click started a drag")
	}
}
