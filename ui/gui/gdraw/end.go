package gdraw

import (
	"politicalchess/src/base"
	"politicalchess/src/stats"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gctx"
	"politicalchess/ui/gui/ghelper"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const endPrompt = "Press 'R' to Play Again or 'Q' to Quit"

// GUIEndDrawer shows the result; the stats are recorded once, when it is built.
type GUIEndDrawer struct {
	result  base.Result
	record  stats.Record
	shownAt time.Time
	panel   *ebiten.Image
}

func NewGUIEndDrawer(ctx *gctx.GUIGameContext) *GUIEndDrawer {
	ed := &GUIEndDrawer{shownAt: time.Now()}
	if ctx.Session != nil {
		ed.result = ctx.Session.Result()
	}
	rec, err := ctx.Stats.Record(ed.result)
	if err != nil {
		ctx.Logx.Errorf("save stats: %v", err)
	}
	ed.record = rec
	ctx.Logx.Infof("game finished: %v, %v", ed.result, rec)

	w := ghelper.TextWidth(ctx.AssetsWorker.Fonts().Large, ed.result.String()) + 96
	if minW := ghelper.TextWidth(ctx.AssetsWorker.Fonts().Small, endPrompt) + 96; w < minW {
		w = minW
	}
	if w > ctx.Config.WindowW-20 {
		w = ctx.Config.WindowW - 20
	}
	ed.panel = ghelper.RenderRoundedRect(w, 220, 16, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
	return ed
}

func (ed *GUIEndDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ctx.Session = nil
		return SceneMenu, nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}
	if t := ctx.Config.EndTimeout(); t > 0 && time.Since(ed.shownAt) >= t {
		ctx.Logx.Info("end screen timed out")
		return SceneNotChanged, gbase.ErrExit
	}
	return SceneNotChanged, nil
}

func (ed *GUIEndDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	drawPanel(ctx, screen, ed.panel)

	fonts := ctx.AssetsWorker.Fonts()
	cx, cy := ctx.Config.WindowW/2, ctx.Config.WindowH/2
	ghelper.DrawTextCentered(screen, ed.result.String(), fonts.Large, cx, cy-40, ctx.Theme.ButtonText)
	ghelper.DrawTextCentered(screen, endPrompt, fonts.Small, cx, cy+20, ctx.Theme.ButtonText)
	ghelper.DrawTextCentered(screen, ed.record.String(), fonts.Small, cx, cy+70, ctx.Theme.Accent)
}
