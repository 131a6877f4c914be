package gctx

import (
	"politicalchess/src"
	"politicalchess/src/logx"
	"politicalchess/src/stats"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gbase/gconf"
	"politicalchess/ui/gui/ghelper"
	"time"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Session      *src.Session // nil outside of a game
	Mode         src.Mode
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Stats        *stats.Store
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		AssetsWorker: a,
		Config:       c,
		Stats:        stats.NewStore(c.StatsPath, l),
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}

// NewSession starts a fresh game in mode with the configured clocks.
func (ctx *GUIGameContext) NewSession(mode src.Mode) error {
	s, err := src.NewSession(src.SessionOptions{
		Mode:          mode,
		Clock:         ctx.Config.Clock(),
		OpponentDelay: ctx.Config.OpponentDelay(),
		Seed:          time.Now().UnixNano(),
		Logger:        ctx.Logx,
	})
	if err != nil {
		return err
	}
	ctx.Mode = mode
	ctx.Session = s
	return nil
}
