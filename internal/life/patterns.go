package life

import (
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// Built-in pattern names.
const (
	PatternGlider = "glider"
	PatternLWSS   = "lwss"
	PatternPulsar = "pulsar"
	PatternGosper = "gosper"
)

// pts builds points from flat x, y pairs.
func pts(xy ...int) []core.Point {
	out := make([]core.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.P(xy[i], xy[i+1]))
	}
	return out
}

// gliderPoints moves diagonally down-right, one cell every 4 generations.
var gliderPoints = pts(
	1, 0, 2, 1, 0, 2, 1, 2, 2, 2,
)

// lwssPoints is the lightweight spaceship.
var lwssPoints = pts(
	1, 0, 2, 0, 3, 0, 4, 0,
	0, 1, 4, 1, 4, 2,
	0, 3, 3, 3,
)

// pulsarBase is mirrored into four quadrants by pulsarPoints.
var pulsarBase = pts(
	2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10, 0,
	0, 2, 5, 2, 7, 2, 12, 2,
	0, 3, 5, 3, 7, 3, 12, 3,
	0, 4, 5, 4, 7, 4, 12, 4,
	2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10, 5,
)

// pulsarPoints expands each base point into its four quadrant images:
// (x,y), (x,y+5), (y+5,x), (y+5,x+5). Overlapping images are kept.
func pulsarPoints() []core.Point {
	out := make([]core.Point, 0, 4*len(pulsarBase))
	for _, p := range pulsarBase {
		out = append(out,
			core.P(p.X, p.Y),
			core.P(p.X, p.Y+5),
			core.P(p.Y+5, p.X),
			core.P(p.Y+5, p.X+5),
		)
	}
	return out
}

// gosperPoints is the Gosper glider gun.
var gosperPoints = pts(
	0, 4, 1, 4, 0, 5, 1, 5,
	10, 4, 10, 5, 10, 6, 11, 3, 11, 7,
	12, 2, 12, 8, 13, 2, 13, 8, 14, 5,
	15, 3, 15, 7, 16, 4, 16, 5, 16, 6, 17, 5,
	20, 2, 20, 3, 20, 4, 21, 2, 21, 3, 21, 4,
	22, 1, 22, 5, 24, 0, 24, 1, 24, 5, 24, 6,
	34, 2, 34, 3, 35, 2, 35, 3,
)

func init() {
	registry.Register(registry.Pattern{Name: PatternGlider, Title: "Glider", Points: gliderPoints})
	registry.Register(registry.Pattern{Name: PatternLWSS, Title: "Lightweight spaceship", Points: lwssPoints})
	registry.Register(registry.Pattern{Name: PatternPulsar, Title: "Pulsar", Points: pulsarPoints()})
	registry.Register(registry.Pattern{Name: PatternGosper, Title: "Gosper glider gun", Points: gosperPoints})
}
