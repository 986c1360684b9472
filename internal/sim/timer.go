package sim

import "time"

// DefaultInterval is the pause between generations in auto-play mode.
const DefaultInterval = 300 * time.Millisecond

// speedFactor is applied to the interval once per speed-up or slow-down
// request. There is no explicit floor; the single-flight scheduler is the
// effective rate limiter when the interval approaches zero.
const speedFactor = 1.2

// playState tracks whether the simulation is free-running and when the last
// auto step fired.
type playState struct {
	playing  bool
	lastStep time.Time
}

func (p *playState) isPlaying() bool { return p.playing }

// start enters auto-play with the step clock reset to now.
func (p *playState) start() {
	p.playing = true
	p.lastStep = time.Now()
}

// stop leaves auto-play. No other state changes.
func (p *playState) stop() {
	p.playing = false
}

// due reports whether an auto step should fire, resetting the step clock when
// it does. While stopped it always reports false without touching state.
func (p *playState) due(interval time.Duration) bool {
	if !p.playing {
		return false
	}
	if time.Since(p.lastStep) < interval {
		return false
	}
	p.lastStep = time.Now()
	return true
}
