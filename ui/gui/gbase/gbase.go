package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	Title          = "Political Chess: USA vs EU"
	WindowW    int = 800
	WindowH    int = 700
	SquareSize int = 70
	MiniSize   int = 24 // captured-piece miniatures
	PanelH     int = 100
	StrokeW        = 4
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	BoardLight   color.RGBA
	BoardDark    color.RGBA
	Selected     color.RGBA
	Candidate    color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	PanelText    color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "light":
		return LightPalette
	case "dark":
		return DarkPalette
	default:
	}
	return DarkPalette
}

var DarkPalette = Palette{
	Bg:           color.RGBA{30, 30, 30, 0xff},
	BoardLight:   color.RGBA{240, 217, 181, 0xff},
	BoardDark:    color.RGBA{181, 136, 99, 0xff},
	Selected:     color.RGBA{255, 0, 0, 0xff},
	Candidate:    color.RGBA{0, 255, 0, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	PanelText:    color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	BoardLight:   color.RGBA{240, 217, 181, 0xff},
	BoardDark:    color.RGBA{181, 136, 99, 0xff},
	Selected:     color.RGBA{255, 0, 0, 0xff},
	Candidate:    color.RGBA{0, 255, 0, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0x22, 0x22, 0x22, 0xff},
	PanelText:    color.RGBA{0x00, 0x00, 0x00, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}
