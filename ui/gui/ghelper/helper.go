package ghelper

import (
	"image/color"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// RenderRoundedRect draws an anti-aliased rounded panel with gg and uploads it.
func RenderRoundedRect(w, h, radius int, fill color.RGBA, stroke color.RGBA, strokeW float64) *ebiten.Image {
	dc := gg.NewContext(w, h)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(strokeW/2, strokeW/2, float64(w)-strokeW, float64(h)-strokeW, float64(radius))
	dc.FillPreserve()
	dc.SetRGBA255(int(stroke.R), int(stroke.G), int(stroke.B), int(stroke.A))
	dc.SetLineWidth(strokeW)
	dc.Stroke()
	return ebiten.NewImageFromImage(dc.Image())
}

func DrawRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawRectStroke outlines a rectangle with the stroke kept inside its bounds.
func DrawRectStroke(screen *ebiten.Image, x, y, w, h, thickness float64, col color.Color) {
	if screen == nil || w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	if thickness > w/2 {
		thickness = w / 2
	}
	if thickness > h/2 {
		thickness = h / 2
	}
	half := thickness / 2
	vector.StrokeRect(screen, float32(x+half), float32(y+half), float32(w-thickness), float32(h-thickness), float32(thickness), col, false)
}

func PointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px < rx+rw && py >= ry && py < ry+rh
}

// DrawTextCentered centers s horizontally on cx with its baseline at y.
func DrawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, col color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, col)
}

func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}
