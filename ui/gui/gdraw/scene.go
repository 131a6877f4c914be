package gdraw

import (
	"politicalchess/ui/gui/gctx"
	"politicalchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneEnd
	SceneNotChanged
)

func (t SceneType) String() string {
	switch t {
	case SceneMenu:
		return "menu"
	case ScenePlay:
		return "play"
	case SceneEnd:
		return "end"
	default:
	}
	return "unchanged"
}

// ToScene builds the scene for t, or returns s unchanged.
func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneEnd:
		s = NewGUIEndDrawer(ctx)
	case SceneNotChanged:
		return s
	default:
	}
	ctx.Logx.Debugf("scene -> %v", t)
	return s
}

// mouseTracker derives press and release edges from the left button state.
type mouseTracker struct {
	prevMouseDown bool
}

func (m *mouseTracker) poll() (x, y int, justPressed, justReleased bool) {
	x, y = ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed = mouseDown && !m.prevMouseDown
	justReleased = !mouseDown && m.prevMouseDown
	m.prevMouseDown = mouseDown
	return
}

// drawPanel dims the screen and centers panel on it.
func drawPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image, panel *ebiten.Image) {
	ghelper.DrawRect(screen, 0, 0, float64(ctx.Config.WindowW), float64(ctx.Config.WindowH), ctx.Theme.ModalBg)
	b := panel.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((ctx.Config.WindowW-b.Dx())/2), float64((ctx.Config.WindowH-b.Dy())/2))
	screen.DrawImage(panel, op)
}
