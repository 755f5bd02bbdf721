// Package render turns a flock into draw calls on a Canvas.
package render

import (
	"math"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
)

// Canvas is the drawing surface the flock is rendered on.
type Canvas interface {
	// ClearFrame erases the previous frame.
	ClearFrame()
	// DrawFilledCircle draws a disc centred on (x, y) in arena coordinates.
	DrawFilledCircle(x, y, radius int)
}

// Flusher is implemented by canvases that buffer draw calls until flushed.
type Flusher interface {
	Show()
}

// DrawFlock clears the canvas, draws one disc of the given radius per boid at
// its rounded location, then flushes the canvas when it is a Flusher.
func DrawFlock(c Canvas, f behavior.Flock, radius int) {
	c.ClearFrame()
	for _, b := range f {
		c.DrawFilledCircle(int(math.Round(b.Location.X)), int(math.Round(b.Location.Y)), radius)
	}
	if fl, ok := c.(Flusher); ok {
		fl.Show()
	}
}
