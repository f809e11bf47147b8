package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// mapInput converts the keys pressed this tick plus mouse and touch presses
// into an input frame. The second result reports a quit request.
func mapInput(keys []ebiten.Key, mouse, touch bool) (core.InputFrame, bool) {
	in := core.NewInputFrame()

	for _, k := range keys {
		switch k {
		case ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW:
			in.Set(core.ActionJump)
		case ebiten.KeyP, ebiten.KeyEscape:
			in.Set(core.ActionPause)
		case ebiten.KeyR:
			in.Set(core.ActionRestart)
		case ebiten.KeyQ:
			return in, true
		}
	}

	if mouse || touch {
		in.Set(core.ActionJump)
	}
	return in, false
}
