package gfont

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face // panel labels and clocks
	Normal font.Face // menu entries and buttons
	Large  font.Face // end screen headline
}

// LoadFonts parses the TTF at path, or the bundled Go font when path is empty.
func LoadFonts(path string) (*Fonts, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	fonts := &Fonts{}
	if fonts.Small, err = face(24); err != nil {
		return nil, err
	}
	if fonts.Normal, err = face(32); err != nil {
		return nil, err
	}
	if fonts.Large, err = face(48); err != nil {
		return nil, err
	}
	return fonts, nil
}
