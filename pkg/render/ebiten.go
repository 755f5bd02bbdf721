package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// BackgroundColor is the colour frames are cleared with.
	BackgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	// BoidColor is the single draw colour of the flock.
	BoidColor = color.RGBA{R: 100, G: 200, B: 255, A: 255}
)

// EbitenCanvas draws on an ebiten image, one per frame.
type EbitenCanvas struct {
	Screen     *ebiten.Image
	Background color.Color
	Color      color.Color
}

// NewEbitenCanvas wraps screen with the default colours.
func NewEbitenCanvas(screen *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{Screen: screen, Background: BackgroundColor, Color: BoidColor}
}

func (c *EbitenCanvas) ClearFrame() {
	c.Screen.Fill(c.Background)
}

func (c *EbitenCanvas) DrawFilledCircle(x, y, radius int) {
	vector.FillCircle(c.Screen, float32(x), float32(y), float32(radius), c.Color, true)
}
