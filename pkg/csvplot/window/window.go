// Package window shows charts in a blocking, resizable desktop window.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/models"
	"github.com/ukaji3/csvplot-go/pkg/csvplot/plotting"
)

// Minimum window size. Smaller canvases leave no room for the plot area.
const (
	minWidth  = 240
	minHeight = 180
)

// Window displays a chart until the user closes it.
//
// Keys: l toggles the y-axis between log and linear, g toggles the grid,
// h or r restores the initial view, q or Escape closes the window.
type Window struct {
	// Title is the window title. If empty, it is derived from the chart.
	Title string
	// Width and Height are the initial window size in pixels.
	Width  int
	Height int
}

// New creates a Window with the given title and initial size.
func New(title string, width, height int) *Window {
	return &Window{Title: title, Width: width, Height: height}
}

// Show opens the window and blocks until it is closed.
func (w *Window) Show(chart *models.Chart) error {
	title := w.Title
	if title == "" {
		title = chart.Title
	}
	if title == "" {
		title = "csvplot - " + chart.Source
	}

	g := newChartGame(chart)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(max(w.Width, minWidth), max(w.Height, minHeight))
	ebiten.SetWindowSizeLimits(minWidth, minHeight, -1, -1)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("chart window: %w", err)
	}
	return nil
}

type chartGame struct {
	chart   *models.Chart
	initial plotting.View
	view    plotting.View

	width, height int
	frame         *ebiten.Image
	dirty         bool
	err           error
}

func newChartGame(chart *models.Chart) *chartGame {
	v := plotting.ViewFor(chart)
	return &chartGame{chart: chart, initial: v, view: v, dirty: true}
}

func (g *chartGame) Update() error {
	if g.err != nil {
		return g.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.setView(g.view.ToggleLogY(), "toggled y scale")
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.setView(g.view.ToggleGrid(), "toggled grid")
	case inpututil.IsKeyJustPressed(ebiten.KeyH), inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.setView(g.initial, "restored view")
	}
	return nil
}

func (g *chartGame) setView(v plotting.View, msg string) {
	g.view = v
	g.dirty = true
	log.WithFields(log.Fields{"log_y": v.LogY, "grid": v.Grid}).Debug(msg)
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	if g.dirty || g.frame == nil {
		if err := g.redraw(); err != nil {
			g.err = err
			return
		}
	}
	screen.DrawImage(g.frame, nil)
}

func (g *chartGame) redraw() error {
	img, err := plotting.Rasterize(g.chart, g.view, g.width, g.height)
	if err != nil {
		return err
	}

	if g.frame != nil {
		g.frame.Deallocate()
	}
	g.frame = ebiten.NewImageFromImage(img)
	g.dirty = false

	log.WithFields(log.Fields{"width": g.width, "height": g.height}).Debug("rendered chart")
	return nil
}

func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, minWidth), max(outsideHeight, minHeight)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.dirty = true
	}
	return w, h
}
