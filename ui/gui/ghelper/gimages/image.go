package gimages

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"politicalchess/src/base"

	"golang.org/x/image/draw"
)

const (
	AtlasCols = 6
	AtlasRows = 2
)

var ErrBadAtlas = errors.New("sprite atlas is not a 6x2 grid")

// LoadAtlas decodes the sprite sheet at path.
func LoadAtlas(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite atlas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite atlas %s: %w", path, err)
	}
	return img, nil
}

// SliceAtlas cuts the atlas into one tile per side and kind, scaled to size x size.
// Columns are K Q R B N P, row 0 is USA and row 1 is EU.
func SliceAtlas(atlas image.Image, size int) (map[base.Piece]image.Image, error) {
	b := atlas.Bounds()
	if size <= 0 || b.Dx() < AtlasCols || b.Dy() < AtlasRows {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadAtlas, b.Dx(), b.Dy())
	}
	tw, th := b.Dx()/AtlasCols, b.Dy()/AtlasRows

	tiles := make(map[base.Piece]image.Image, AtlasCols*AtlasRows)
	for row, side := range []base.Side{base.SideA, base.SideB} {
		for _, kind := range base.Kinds {
			col := kind.AtlasColumn()
			src := image.Rect(b.Min.X+col*tw, b.Min.Y+row*th, b.Min.X+(col+1)*tw, b.Min.Y+(row+1)*th)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			draw.CatmullRom.Scale(dst, dst.Bounds(), atlas, src, draw.Over, nil)
			tiles[base.Piece{Kind: kind, Side: side}] = dst
		}
	}
	return tiles, nil
}
