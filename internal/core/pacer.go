package core

import "time"

// Generation rate bounds, in generations per second.
const (
	MinRate = 1
	MaxRate = 60
)

// Pacer converts wall-clock frame time into a bounded number of simulation
// steps at a fixed logical tempo. Elapsed time accumulates between frames;
// each full interval yields one step, capped at maxCatchUp per frame so that
// a stalled frame never triggers an unbounded burst.
type Pacer struct {
	rate        int
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewPacer constructs a Pacer targeting rate generations per second.
func NewPacer(rate, maxCatchUp int) *Pacer {
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	p := &Pacer{maxCatchUp: maxCatchUp}
	p.SetRate(rate)
	return p
}

// SetRate changes the tempo. Values are clamped to [MinRate, MaxRate].
func (p *Pacer) SetRate(rate int) {
	p.rate = Clamp(rate, MinRate, MaxRate)
	p.interval = time.Second / time.Duration(p.rate)
}

// Rate returns the current tempo in generations per second.
func (p *Pacer) Rate() int {
	return p.rate
}

// Interval returns the duration of one generation.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Steps reports how many generations should run for a frame at now.
// While paused the accumulator is dropped so that resuming does not
// replay the time spent paused.
func (p *Pacer) Steps(now time.Time, running bool) int {
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	if !running || delta < 0 {
		p.accumulator = 0
		return 0
	}

	p.accumulator += delta
	n := 0
	for p.accumulator >= p.interval && n < p.maxCatchUp {
		p.accumulator -= p.interval
		n++
	}
	if n == p.maxCatchUp && p.accumulator >= p.interval {
		p.accumulator %= p.interval
	}
	return n
}

// Reset forgets accumulated time and the last frame timestamp.
func (p *Pacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}

// FPSMeter counts rendered frames per wall-clock second.
type FPSMeter struct {
	frames int
	fps    int
	since  time.Time
}

// Frame records one rendered frame at now and returns the latest rate.
func (m *FPSMeter) Frame(now time.Time) int {
	if m.since.IsZero() {
		m.since = now
	}
	m.frames++
	if now.Sub(m.since) >= time.Second {
		m.fps = m.frames
		m.frames = 0
		m.since = now
	}
	return m.fps
}

// FPS returns the most recently measured rate.
func (m *FPSMeter) FPS() int {
	return m.fps
}
