package gimages

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"politicalchess/src/base"
	"testing"
)

// fakeAtlas paints every tile a distinct solid color.
func fakeAtlas(tile int) (*image.RGBA, map[base.Piece]color.RGBA) {
	img := image.NewRGBA(image.Rect(0, 0, tile*AtlasCols, tile*AtlasRows))
	colors := map[base.Piece]color.RGBA{}
	for row, side := range []base.Side{base.SideA, base.SideB} {
		for _, kind := range base.Kinds {
			col := kind.AtlasColumn()
			c := color.RGBA{uint8(40 * col), uint8(100 * row), uint8(10 + col + row), 0xff}
			colors[base.Piece{Kind: kind, Side: side}] = c
			for y := row * tile; y < (row+1)*tile; y++ {
				for x := col * tile; x < (col+1)*tile; x++ {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
	return img, colors
}

func TestSliceAtlasTilesAndScale(t *testing.T) {
	atlas, colors := fakeAtlas(10)
	tiles, err := SliceAtlas(atlas, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(tiles) != 12 {
		t.Fatalf("tiles = %d, want 12", len(tiles))
	}
	for p, want := range colors {
		tile, ok := tiles[p]
		if !ok {
			t.Fatalf("missing tile %v", p.Key())
		}
		if b := tile.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
			t.Errorf("%v bounds = %v", p.Key(), b)
		}
		got := color.RGBAModel.Convert(tile.At(10, 10)).(color.RGBA)
		if got != want {
			t.Errorf("%v center = %v, want %v", p.Key(), got, want)
		}
	}
}

func TestSliceAtlasRejectsTinyImage(t *testing.T) {
	_, err := SliceAtlas(image.NewRGBA(image.Rect(0, 0, 5, 1)), 70)
	if !errors.Is(err, ErrBadAtlas) {
		t.Errorf("err = %v, want ErrBadAtlas", err)
	}
}

func TestLoadAtlas(t *testing.T) {
	atlas, _ := fakeAtlas(4)
	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, atlas); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := LoadAtlas(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 8 {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if _, err := LoadAtlas(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAtlas(bad); err == nil {
		t.Error("expected decode error")
	}
}
