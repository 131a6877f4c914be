package gdraw

import (
	"fmt"
	"politicalchess/src"
	"politicalchess/src/stats"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gctx"
	"politicalchess/ui/gui/ghelper"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GUIMenuDrawer is the mode selection scene shown before every game.
type GUIMenuDrawer struct {
	buttons []*ghelper.Button
	modes   []src.Mode
	record  stats.Record
	mouse   mouseTracker

	prevTime time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{
		modes:    []src.Mode{src.ModeTwoPlayer, src.ModeVersusComputer},
		record:   ctx.Stats.Load(),
		prevTime: time.Now(),
	}
	md.makeLayout(ctx)
	return md
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ctx.Theme == gbase.LightPalette {
			ctx.Theme = gbase.DarkPalette
		} else {
			ctx.Theme = gbase.LightPalette
		}
		for _, b := range md.buttons {
			b.Restyle(ctx.Theme)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return SceneNotChanged, gbase.ErrExit
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad1) {
		return md.start(ctx, src.ModeTwoPlayer)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad2) {
		return md.start(ctx, src.ModeVersusComputer)
	}

	mx, my, justPressed, justReleased := md.mouse.poll()
	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if clicked {
			ctx.Logx.Infof("%s (%d) clicked", b.Label, i)
			return md.start(ctx, md.modes[i])
		}
	}
	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) start(ctx *gctx.GUIGameContext, mode src.Mode) (SceneType, error) {
	if err := ctx.NewSession(mode); err != nil {
		return SceneNotChanged, err
	}
	return ScenePlay, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	fonts := ctx.AssetsWorker.Fonts()
	cx := ctx.Config.WindowW / 2

	ghelper.DrawTextCentered(screen, gbase.Title, fonts.Large, cx, md.buttons[0].Y-60, ctx.Theme.MenuText)
	for _, b := range md.buttons {
		b.DrawAnimated(screen, fonts.Normal, ctx.Theme)
	}
	last := md.buttons[len(md.buttons)-1]
	ghelper.DrawTextCentered(screen, md.record.String(), fonts.Small, cx, last.Y+last.H+60, ctx.Theme.MenuText)
	ghelper.DrawTextCentered(screen, "Press 1 or 2, Tab for theme, Q to quit", fonts.Small, cx, ctx.Config.WindowH-30, ctx.Theme.MenuText)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	}
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	btnW, btnH := 440, 64
	gap := 18
	n := len(md.modes)
	totalH := n*btnH + (n-1)*gap
	startY := (ctx.Config.WindowH - totalH) / 2
	x := ctx.Config.WindowW/2 - btnW/2

	md.buttons = md.buttons[:0]
	for i, mode := range md.modes {
		label := fmt.Sprintf("%d. %v", i+1, mode)
		md.buttons = append(md.buttons, ghelper.NewButton(label, x, startY+i*(btnH+gap), btnW, btnH, ctx.Theme))
	}
}
