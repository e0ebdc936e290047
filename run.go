package pager

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ClearColor fills the window before the surface draws.
	ClearColor Color
	// ShowStatus overlays FPS and the active screen in the top-left corner.
	ShowStatus bool
	// MouseAsTouch lets left-button drags act as touch swipes.
	MouseAsTouch bool
	// Resizable allows the user to resize the window.
	Resizable bool
}

// game adapts a Controller and EbitenSurface to ebiten.Game.
type game struct {
	ctrl    *Controller
	surface *EbitenSurface
	input   *EbitenInput
	cfg     RunConfig
}

func (g *game) Update() error {
	g.ctrl.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor != (Color{}) {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.surface.Draw(screen)
	if g.cfg.ShowStatus {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nscreen %d/%d",
			ebiten.ActualFPS(), g.ctrl.Current(), g.ctrl.ScreenCount()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	g.surface.SetViewport(w, h)
	g.input.Resize(w, h)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives ctrl until the window closes. ctrl must have
// been created with surface. An EbitenInput is attached to ctrl for the
// duration of the run and detached when Run returns.
func Run(ctrl *Controller, surface *EbitenSurface, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := surface.Viewport()
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.Title == "" {
		cfg.Title = "pager"
	}

	in := NewEbitenInput(surface)
	in.MouseAsTouch = cfg.MouseAsTouch
	ctrl.Attach(in)
	defer ctrl.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(&game{ctrl: ctrl, surface: surface, input: in, cfg: cfg})
}
