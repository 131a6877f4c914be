package gdraw

import (
	"fmt"
	"politicalchess/src"
	"politicalchess/src/base"
	"politicalchess/src/clock"
	"politicalchess/src/selection"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gctx"
	"politicalchess/ui/gui/ghelper"
	"politicalchess/ui/gui/ghelper/gclipboard"
	"politicalchess/ui/gui/ghelper/gdialog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var helpLines = []string{
	"U: undo",
	"R: restart",
	"C: copy FEN",
	"Q: quit",
}

// GUIPlayDrawer draws the board, the captured tallies and the clocks.
type GUIPlayDrawer struct {
	sqSize    int
	boardSize int
	sideX     int // left edge of the side column
	mouse     mouseTracker
	notice    string
	noticeTil time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		sqSize:    ctx.Config.SquareSize,
		boardSize: ctx.Config.BoardSize(),
	}
	pd.sideX = pd.boardSize + 20
	return pd
}

// Update runs one frame: clocks, end check, input, then the computer move.
func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	s := ctx.Session
	if s == nil {
		return SceneMenu, nil
	}
	now := time.Now()

	s.Tick(now)
	if s.Over() {
		return SceneEnd, nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		if gdialog.Confirm(gbase.Title, "Quit the current game?") {
			return SceneNotChanged, gbase.ErrExit
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		ctx.Logx.Info("restart requested")
		if err := ctx.NewSession(ctx.Mode); err != nil {
			return SceneNotChanged, err
		}
		return SceneNotChanged, nil
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		if !s.Undo() {
			pd.flash(now, "Nothing to undo")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := gclipboard.CopyFEN(s.Board().FEN()); err != nil {
			ctx.Logx.Warnf("copy fen: %v", err)
			pd.flash(now, "Clipboard unavailable")
		} else {
			pd.flash(now, "FEN copied")
		}
	default:
	}

	mx, my, justPressed, _ := pd.mouse.poll()
	if justPressed {
		if act := s.ClickPoint(mx, my, pd.sqSize); act != selection.Ignored {
			ctx.Logx.Debugf("click %d,%d: %v", mx, my, act)
		}
	}

	s.StepOpponent(now)
	if s.Over() {
		return SceneEnd, nil
	}
	return SceneNotChanged, nil
}

func (pd *GUIPlayDrawer) flash(now time.Time, msg string) {
	pd.notice = msg
	pd.noticeTil = now.Add(2 * time.Second)
}

func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	if ctx.Session == nil {
		return
	}
	pd.drawBoard(ctx, screen)
	pd.drawPanel(ctx, screen)
	pd.drawSide(ctx, screen)

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\n%s", ebiten.ActualTPS(), ctx.Session.Board().FEN()))
	}
}

func (pd *GUIPlayDrawer) drawBoard(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	selected := s.Selected()
	sz := float64(pd.sqSize)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x, y := float64(col*pd.sqSize), float64(row*pd.sqSize)
			c := ctx.Theme.BoardLight
			if (row+col)%2 == 1 {
				c = ctx.Theme.BoardDark
			}
			ghelper.DrawRect(screen, x, y, sz, sz, c)

			sq := base.SquareAt(row, col)
			if p, ok := s.PieceAt(sq); ok {
				pd.drawPiece(ctx, screen, p, col*pd.sqSize, row*pd.sqSize)
			}

			switch {
			case sq == selected:
				ghelper.DrawRectStroke(screen, x, y, sz, sz, gbase.StrokeW, ctx.Theme.Selected)
			case s.IsCandidateTarget(sq):
				ghelper.DrawRectStroke(screen, x, y, sz, sz, gbase.StrokeW, ctx.Theme.Candidate)
			default:
			}
		}
	}
}

// drawPiece falls back to a text label when no tile is registered for p.
func (pd *GUIPlayDrawer) drawPiece(ctx *gctx.GUIGameContext, screen *ebiten.Image, p base.Piece, x, y int) {
	if img := ctx.AssetsWorker.Piece(p); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
		return
	}
	col := ctx.Theme.PanelText
	if p.Side == base.SideA {
		col = ctx.Theme.ButtonFill
	}
	ghelper.DrawTextCentered(screen, p.Key(), ctx.AssetsWorker.Fonts().Small, x+pd.sqSize/2, y+pd.sqSize/2+8, col)
}

func (pd *GUIPlayDrawer) drawPanel(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	face := ctx.AssetsWorker.Fonts().Small
	h := ctx.Config.WindowH

	rows := []struct {
		side base.Side
		y    int
	}{
		{base.SideA, h - 60},
		{base.SideB, h - 20},
	}
	for _, r := range rows {
		label := fmt.Sprintf("%v captured:", r.side)
		text.Draw(screen, label, face, 10, r.y, ctx.Theme.PanelText)
		x := 10 + ghelper.TextWidth(face, label) + 10
		for _, k := range s.Captured(r.side).Glyphs() {
			p := base.Piece{Kind: k, Side: r.side.Opponent()}
			if img := ctx.AssetsWorker.Mini(p); img != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(x), float64(r.y-gbase.MiniSize+4))
				screen.DrawImage(img, op)
			} else {
				text.Draw(screen, string(k.Rune()), face, x, r.y, ctx.Theme.PanelText)
			}
			x += gbase.MiniSize - 4
		}

		col := ctx.Theme.PanelText
		if s.Turn() == r.side {
			col = ctx.Theme.Accent
		}
		clk := fmt.Sprintf("%v Time: %s", r.side, clock.Format(s.Remaining(r.side)))
		text.Draw(screen, clk, face, ctx.Config.WindowW-250, r.y, col)
	}
}

func (pd *GUIPlayDrawer) drawSide(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	s := ctx.Session
	face := ctx.AssetsWorker.Fonts().Small
	y := 40

	text.Draw(screen, fmt.Sprintf("%v to move", s.Turn()), face, pd.sideX, y, ctx.Theme.Accent)
	y += 34
	mode := "1vs1"
	if ctx.Mode == src.ModeVersusComputer {
		mode = "vs Computer"
		if s.OpponentPending() {
			text.Draw(screen, "thinking...", face, pd.sideX, y+34, ctx.Theme.MenuText)
		}
	}
	text.Draw(screen, mode, face, pd.sideX, y, ctx.Theme.MenuText)
	y += 100
	for _, l := range helpLines {
		text.Draw(screen, l, face, pd.sideX, y, ctx.Theme.MenuText)
		y += 30
	}
	if pd.notice != "" && time.Now().Before(pd.noticeTil) {
		text.Draw(screen, pd.notice, face, pd.sideX, y+20, ctx.Theme.Selected)
	}
}
