//go:build !ebiten

package ui

import "time"

// Stats is the snapshot of simulation statistics the HUD renders.
type Stats struct {
	StepCount  uint64
	Population int
	Interval   time.Duration
	Playing    bool
	Toggles    int
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD constructs a stub HUD.
func NewHUD() *HUD { return &HUD{} }

// Update is a no-op in headless builds.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, Stats) {}
