// Package app wires the simulation engine to the ebiten window: input
// decoding, the render loop and the save-on-exit path.
package app

import (
	"flag"
	"time"

	"sparselife/internal/save"
	"sparselife/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	GridSize float64
	Interval time.Duration
	TPS      int
	SavePath string
	Sync     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    800,
		Height:   800,
		GridSize: sim.DefaultScale,
		Interval: sim.DefaultInterval,
		TPS:      60,
		SavePath: save.DefaultPath,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.GridSize, "grid", c.GridSize, "cell size in normalized view units")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "auto-play step interval")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "save file path")
	fs.BoolVar(&c.Sync, "sync", c.Sync, "compute generations inline instead of on a worker")
}
