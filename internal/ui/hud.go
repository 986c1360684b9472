//go:build ebiten

// Package ui draws the statistics overlay on top of the simulation view.
package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Stats is the snapshot of simulation statistics the HUD renders.
type Stats struct {
	StepCount  uint64
	Population int
	Interval   time.Duration
	Playing    bool
	Toggles    int
}

// HUD shows simulation statistics in the top-left corner. Toggled with H.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update handles HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the statistics lines.
func (h *HUD) Draw(screen *ebiten.Image, stats Stats) {
	if !h.visible {
		return
	}
	state := "paused"
	if stats.Playing {
		state = "playing"
	}
	lines := []string{
		fmt.Sprintf("step %d  pop %d", stats.StepCount, stats.Population),
		fmt.Sprintf("%s  interval %v", state, stats.Interval.Round(time.Millisecond)),
		fmt.Sprintf("toggles %d", stats.Toggles),
	}
	face := basicfont.Face7x13
	fg := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	y := 16
	for _, line := range lines {
		text.Draw(screen, line, face, 8, y, fg)
		y += 14
	}
}
