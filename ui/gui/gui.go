package gui

import (
	"errors"
	"politicalchess/src/logx"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gbase/gconf"
	"politicalchess/ui/gui/gctx"
	"politicalchess/ui/gui/gdraw"
	"politicalchess/ui/gui/ghelper"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(cfg *gconf.Config, logger logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker(cfg, logger)
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(assets, cfg, logger)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

// Run blocks until the window closes; a quit key is a clean exit.
func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gbase.Title)
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Info("exit requested")
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	gp.current = next.ToScene(gp.current, gp.ctx)
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
