package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Rendering characters
const (
	SegmentChar = '█'
	PlaneChar   = '▶'
	BodyChar    = '■'
)

// propeller glyphs indexed by motor frame
var propeller = []rune{'|', '/', '-'}

// Render draws the current game state to the screen, scaling the world to
// the screen size.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || g.plane == nil {
		return
	}

	sx := g.cfg.World.Width / float64(dst.Width())
	sy := g.cfg.World.Height / float64(dst.Height())

	for _, seg := range g.spawner.Segments() {
		dst.FillRect(seg.Bounds().Scale(sx, sy), SegmentChar, core.ColorGreen)
	}

	g.drawPlane(dst, g.plane.Bounds().Scale(sx, sy))

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawTextColor(2, 0, scoreText, core.ColorBrightWhite)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPlane fills the plane's cells: nose on the right edge pointing along
// the current rotation, and a spinning propeller on the left edge while the
// motor runs.
func (g *Game) drawPlane(dst *core.Screen, r core.Rect) {
	color := core.ColorYellow
	if !g.plane.Alive() {
		color = core.ColorRed
	}

	dst.FillRect(r, BodyChar, color)

	noseY := r.Y + r.H/2
	switch a := g.plane.Angle(); {
	case a <= -10:
		noseY = r.Y
	case a >= 10:
		noseY = r.Bottom() - 1
	}
	dst.SetColor(r.Right()-1, noseY, PlaneChar, color)

	if !g.plane.MotorRunning() {
		return
	}
	frame := g.plane.Frame()
	if frame < 0 || frame >= len(propeller) {
		frame = 0
	}
	dst.SetColor(r.X, r.Y+r.H/2, propeller[frame], core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─', core.ColorGray)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
