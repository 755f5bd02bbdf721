package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
)

const blockRune = '█'

// TerminalCanvas draws on a tcell screen. Arena coordinates are scaled to the
// current screen size, so a circle usually becomes an ellipse of cells since
// terminal cells are taller than wide.
type TerminalCanvas struct {
	screen tcell.Screen
	arena  behavior.Bounds
	style  tcell.Style
}

// NewTerminalCanvas maps an arena of the given size onto screen.
func NewTerminalCanvas(screen tcell.Screen, arena behavior.Bounds) *TerminalCanvas {
	return &TerminalCanvas{
		screen: screen,
		arena:  arena,
		style:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
	}
}

func (c *TerminalCanvas) ClearFrame() {
	c.screen.Clear()
}

// DrawFilledCircle fills the cell holding the centre and every cell whose
// centre lies inside the scaled circle. Cells off screen are skipped.
func (c *TerminalCanvas) DrawFilledCircle(x, y, radius int) {
	w, h := c.screen.Size()
	if w == 0 || h == 0 || c.arena.X <= 0 || c.arena.Y <= 0 {
		return
	}
	sx, sy := float64(w)/c.arena.X, float64(h)/c.arena.Y
	cx, cy := float64(x)*sx, float64(y)*sy
	rx, ry := float64(radius)*sx, float64(radius)*sy

	c.set(int(math.Floor(cx)), int(math.Floor(cy)), w, h)
	if rx <= 0 || ry <= 0 {
		return
	}
	for row := int(math.Floor(cy - ry)); row <= int(math.Ceil(cy+ry)); row++ {
		for col := int(math.Floor(cx - rx)); col <= int(math.Ceil(cx+rx)); col++ {
			dx := (float64(col) + 0.5 - cx) / rx
			dy := (float64(row) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.set(col, row, w, h)
			}
		}
	}
}

// Show pushes the frame to the terminal.
func (c *TerminalCanvas) Show() {
	c.screen.Show()
}

func (c *TerminalCanvas) set(col, row, w, h int) {
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	c.screen.SetContent(col, row, blockRune, nil, c.style)
}
