package ghelper

import (
	"fmt"
	"image"
	"politicalchess/src/base"
	"politicalchess/src/logx"
	"politicalchess/ui/gui/gbase"
	"politicalchess/ui/gui/gbase/gconf"
	"politicalchess/ui/gui/ghelper/gfont"
	"politicalchess/ui/gui/ghelper/gimages"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIAssetsWorker struct {
	pieceImages map[base.Piece]*ebiten.Image
	miniImages  map[base.Piece]*ebiten.Image
	fonts       *gfont.Fonts
}

// NewGUIAssetsWorker loads the sprite atlas and fonts; a bad atlas is fatal.
func NewGUIAssetsWorker(cfg *gconf.Config, logger logx.Logger) (*GUIAssetsWorker, error) {
	atlas, err := gimages.LoadAtlas(cfg.SpritePath)
	if err != nil {
		return nil, err
	}
	pieces, err := toEbiten(atlas, cfg.SquareSize)
	if err != nil {
		return nil, err
	}
	minis, err := toEbiten(atlas, gbase.MiniSize)
	if err != nil {
		return nil, err
	}
	fonts, err := gfont.LoadFonts(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %d piece tiles from %s", len(pieces), cfg.SpritePath)
	return &GUIAssetsWorker{pieceImages: pieces, miniImages: minis, fonts: fonts}, nil
}

func toEbiten(atlas image.Image, size int) (map[base.Piece]*ebiten.Image, error) {
	tiles, err := gimages.SliceAtlas(atlas, size)
	if err != nil {
		return nil, fmt.Errorf("slice atlas: %w", err)
	}
	out := make(map[base.Piece]*ebiten.Image, len(tiles))
	for p, t := range tiles {
		out[p] = ebiten.NewImageFromImage(t)
	}
	return out, nil
}

// Piece returns the board-sized tile, nil when none is registered.
func (aw *GUIAssetsWorker) Piece(p base.Piece) *ebiten.Image {
	return aw.pieceImages[p]
}

func (aw *GUIAssetsWorker) Mini(p base.Piece) *ebiten.Image {
	return aw.miniImages[p]
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
