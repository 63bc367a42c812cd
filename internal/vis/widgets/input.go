package widgets

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/dicomview/internal/vis/interact"
)

// DoubleClickInterval is the longest gap between two presses of a double click.
const DoubleClickInterval = 300 * time.Millisecond

// doubleClickSlop is how far, in pixels, the second press may land.
const doubleClickSlop = 4

// ModeFor maps the pressed buttons to a drag mode. The primary button
// performs primary unless a modifier selects zoom (Ctrl) or pan (Shift),
// for devices without middle and right buttons.
func ModeFor(buttons pointer.Buttons, mods key.Modifiers, primary interact.Mode) interact.Mode {
	switch {
	case buttons.Contain(pointer.ButtonPrimary):
		switch {
		case mods.Contain(key.ModCtrl):
			return interact.ModeZoom
		case mods.Contain(key.ModShift):
			return interact.ModePan
		}
		return primary
	case buttons.Contain(pointer.ButtonTertiary):
		return interact.ModeZoom
	case buttons.Contain(pointer.ButtonSecondary):
		return interact.ModePan
	}
	return interact.ModeNone
}

// ClickCounter detects double clicks from press times and positions.
type ClickCounter struct {
	last    time.Duration
	lastPos f32.Point
	pending bool
}

// Press records a press and reports whether it completes a double click.
func (c *ClickCounter) Press(t time.Duration, pos f32.Point) bool {
	d := pos.Sub(c.lastPos)
	near := d.X*d.X+d.Y*d.Y <= doubleClickSlop*doubleClickSlop
	if c.pending && near && t-c.last <= DoubleClickInterval {
		c.pending = false
		return true
	}
	c.last = t
	c.lastPos = pos
	c.pending = true
	return false
}
