//go:build ebiten

package app

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sparselife/internal/render"
	"sparselife/internal/save"
	"sparselife/internal/sim"
	"sparselife/internal/ui"
	"sparselife/internal/view"
)

// zoomStep scales the grid size per wheel notch; the grid size is clamped to
// keep cells between half a percent and the full view height.
const (
	zoomStep    = 0.05
	minGridSize = 0.005
	maxGridSize = 1.0
)

// Game adapts the simulation facade to the ebiten.Game interface. It decodes
// raw input into the semantic operations, forwards the per-tick ChangeSet to
// the painter, and persists a snapshot on shutdown.
type Game struct {
	sim     *sim.Simulation
	painter *render.CellPainter
	hud     *ui.HUD
	store   *save.File

	width    int
	height   int
	gridSize float64
	offset   view.Vec

	dragging  bool
	lastMouse view.Vec

	closed bool
}

// New constructs the Game, restoring the saved snapshot when one exists.
func New(cfg *Config) *Game {
	var s *sim.Simulation
	if cfg.Sync {
		s = sim.NewSynchronous()
	} else {
		s = sim.New()
	}
	s.SetInterval(cfg.Interval)
	s.SetScale(cfg.GridSize)

	g := &Game{
		sim:      s,
		painter:  render.NewCellPainter(),
		hud:      ui.NewHUD(),
		store:    save.NewFile(cfg.SavePath),
		width:    cfg.Width,
		height:   cfg.Height,
		gridSize: cfg.GridSize,
	}

	if snap, ok, err := g.store.Load(); err != nil {
		log.Printf("load %s: %v", g.store.Path(), err)
	} else if ok {
		s.Load(snap)
	}
	return g
}

// Shutdown persists the current snapshot and stops the worker. It is
// idempotent and must run on every exit path; a save failure is logged and
// does not touch simulation state.
func (g *Game) Shutdown() {
	if g.closed {
		return
	}
	g.closed = true
	if err := g.store.Write(g.sim.Snapshot()); err != nil {
		log.Printf("write %s: %v", g.store.Path(), err)
	}
	g.sim.Close()
}

// Update decodes input, advances the simulation one tick and applies the
// resulting ChangeSet.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.TogglePlaying()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sim.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.SlowDown()
	}

	g.handleMouse()
	g.hud.Update()

	ch := g.sim.Update()
	if ch.CellsSet {
		g.painter.SetCells(ch.Cells)
	}
	if ch.ScaleSet {
		g.gridSize = ch.Scale
	}
	if ch.OffsetSet {
		g.offset = ch.Offset
	}
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	mouse := view.Vec{X: float64(mx), Y: float64(my)}
	w := float64(g.width)
	h := float64(g.height)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := view.CellAt(w, h, mouse, g.offset, g.gridSize)
		g.sim.ToggleCell(sim.Cell{X: x, Y: y})
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.dragging = true
		g.lastMouse = mouse
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.dragging = false
	}
	if g.dragging {
		diff := view.PanDelta(w, h, mouse.Sub(g.lastMouse))
		g.sim.SetOffset(g.offset.Sub(diff))
		g.lastMouse = mouse
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.handleZoom(w, h, mouse, dy)
	}
}

// handleZoom rescales the grid around the point under the cursor: the pan
// offset is adjusted so that point stays put while cell sizes change.
func (g *Game) handleZoom(w, h float64, mouse view.Vec, dy float64) {
	prev := g.gridSize
	next := prev * (1 + dy*zoomStep)
	if next < minGridSize {
		next = minGridSize
	}
	if next > maxGridSize {
		next = maxGridSize
	}
	if next == prev {
		return
	}

	target := view.ZoomTarget(w, h, mouse, true, g.offset)
	change := next/prev - 1
	g.sim.SetScale(next)
	g.sim.SetOffset(g.offset.Add(target.Mul(change)))
}

// Draw renders the live cells and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 16, A: 255})
	g.painter.Draw(screen, g.offset, g.gridSize, color.RGBA{R: 235, G: 235, B: 240, A: 255})
	g.hud.Draw(screen, ui.Stats{
		StepCount:  g.sim.StepCount(),
		Population: g.sim.LivingCount(),
		Interval:   g.sim.Interval(),
		Playing:    g.sim.IsPlaying(),
		Toggles:    len(g.sim.ToggleRecord()),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
