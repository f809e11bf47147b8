package window

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	defaultBackground = color.RGBA{0x71, 0xc5, 0xcf, 0xff}

	segmentFill   = color.RGBA{0x5e, 0xa8, 0x3c, 0xff}
	segmentBorder = color.RGBA{0x3b, 0x6e, 0x22, 0xff}
	planeBody     = color.RGBA{0xf4, 0xc4, 0x30, 0xff}
	planeDead     = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
	planeWing     = color.RGBA{0xd3, 0x8b, 0x1a, 0xff}
	propeller     = color.RGBA{0x33, 0x33, 0x33, 0xff}
	overlay       = color.RGBA{0, 0, 0, 0x80}

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

// hudScale enlarges the 7x13 bitmap font.
const hudScale = 2

// sprites holds one pre-rendered plane image per motor frame.
type sprites struct {
	frames []*ebiten.Image
}

// newSprites draws the plane frames: a body with a wing and a propeller
// whose blade length cycles with the frame index.
func newSprites(cfg config.FlappyPlayer) *sprites {
	w, h := float32(cfg.Width), float32(cfg.Height)
	n := 1
	for _, f := range cfg.Frames {
		n = max(n, f+1)
	}

	s := &sprites{frames: make([]*ebiten.Image, n)}
	for i := range s.frames {
		img := ebiten.NewImage(int(cfg.Width), int(cfg.Height))
		vector.DrawFilledRect(img, w*0.15, h*0.3, w*0.85, h*0.45, color.White, false)
		vector.DrawFilledRect(img, w*0.35, h*0.15, w*0.25, h*0.7, planeWing, false)

		blade := h * (0.2 + 0.3*float32(i%3))
		vector.DrawFilledRect(img, 0, h/2-blade/2, w*0.08, blade, propeller, false)
		s.frames[i] = img
	}
	return s
}

// frame returns the image for a motor frame.
func (s *sprites) frame(i int) *ebiten.Image {
	if i < 0 || i >= len(s.frames) {
		i = 0
	}
	return s.frames[i]
}

// drawScene draws obstacles and the plane.
func (h *Host) drawScene(screen *ebiten.Image, scene flappy.Scene) {
	for _, r := range scene.Segments {
		x, y, w, hh := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.DrawFilledRect(screen, x, y, w, hh, segmentBorder, false)
		vector.DrawFilledRect(screen, x+2, y+2, w-4, hh-4, segmentFill, false)
	}

	p := scene.Plane
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.AnchorX*p.W, -p.AnchorY*p.H)
	op.GeoM.Rotate(p.Angle * math.Pi / 180)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(planeBody)
	if !p.Alive {
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(planeDead)
	}
	screen.DrawImage(h.sprites.frame(p.Frame), op)
}

// drawHUD draws the score label, the best score and the pause overlay.
func (h *Host) drawHUD(screen *ebiten.Image, scene flappy.Scene) {
	drawText(screen, strconv.Itoa(scene.Score), 20, 20, color.White)

	best := fmt.Sprintf("best %d", max(h.best, scene.Score))
	drawText(screen, best, scene.Width-20-textWidth(best), 20, color.White)
	if h.opts.Player != "" {
		mine := fmt.Sprintf("you %d", max(h.playerBest, scene.Score))
		drawText(screen, mine, scene.Width-20-textWidth(mine), 50, color.White)
	}

	if scene.Paused {
		vector.DrawFilledRect(screen, 0, 0, float32(scene.Width), float32(scene.Height), overlay, false)
		msg := "PAUSED"
		drawText(screen, msg, (scene.Width-textWidth(msg))/2, scene.Height/2-20, color.White)
	}
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudScale, hudScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, hudFace, op)
}

// textWidth returns the drawn width of s in world units.
func textWidth(s string) float64 {
	w, _ := text.Measure(s, hudFace, 0)
	return w * hudScale
}

// parseHexColor parses "#rrggbb" or "rrggbb".
func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("window: color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("window: color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
