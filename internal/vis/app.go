// Package vis implements a Gio-based viewer for 16-bit grayscale images.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	log "github.com/sirupsen/logrus"

	"github.com/elektrokombinacija/dicomview/internal/vis/draw"
	"github.com/elektrokombinacija/dicomview/internal/vis/interact"
	"github.com/elektrokombinacija/dicomview/internal/vis/observer"
	"github.com/elektrokombinacija/dicomview/internal/vis/state"
	"github.com/elektrokombinacija/dicomview/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	state    *state.State
	theme    *material.Theme
	window   *app.Window
	renderer *draw.ImageRenderer
	viewport *widgets.Viewport
	readout  *widgets.Readout
	toolbar  *widgets.Toolbar
	gesture  *interact.Gesture
	focused  bool
}

// NewApp wires the viewer around st and publishes the initial parameters.
func NewApp(st *state.State, w *app.Window) (*App, error) {
	th := material.NewTheme()

	renderer := draw.NewImageRenderer(st.Image, w)
	renderer.SetRescale(st.Params.Slope, st.Params.Intercept)

	viewport := widgets.NewViewport(st, renderer)
	readout := widgets.NewReadout(st, viewport)

	display, err := observer.NewDisplay(renderer, readout, observer.LogReadout)
	if err != nil {
		return nil, err
	}
	gesture, err := interact.NewGesture(st.Params, display, viewport)
	if err != nil {
		return nil, err
	}
	viewport.Bind(gesture)

	display.Publish(st.Params)

	return &App{
		state:    st,
		theme:    th,
		window:   w,
		renderer: renderer,
		viewport: viewport,
		readout:  readout,
		toolbar:  widgets.NewToolbar(viewport, gesture, readout),
		gesture:  gesture,
	}, nil
}

// Run starts the application event loop.
func (a *App) Run() error {
	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)

	for {
		switch e := a.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Name: "R"}, key.Filter{Focus: tag, Name: "G"})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)
			if !a.focused {
				gtx.Execute(key.FocusCmd{Tag: tag})
				a.focused = true
			}

			a.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "R":
		log.Debug("reset key")
		a.gesture.Reset()
	case "G":
		a.viewport.ShowGrid = !a.viewport.ShowGrid
		a.window.Invalidate()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		// Toolbar at top
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		// Image canvas
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.viewport.Layout(gtx)
		}),
	)
}
