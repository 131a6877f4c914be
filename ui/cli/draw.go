package cli

import (
	"fmt"
	"io"
	"os"
	"politicalchess/src/base"
	"politicalchess/src/material"

	"golang.org/x/term"
)

// ANSI-code
const (
	reset   = "\033[0m"
	lightBg = "\033[47m"
	darkBg  = "\033[100m"
	whiteF  = "\033[97m"
	blackF  = "\033[30m"
	dimF    = "\033[90m"
)

var glyphs = [2][7]string{
	base.SideA: {" ", "♔", "♕", "♖", "♗", "♘", "♙"},
	base.SideB: {" ", "♚", "♛", "♜", "♝", "♞", "♟"},
}

// Glyph returns the unicode figure for p.
func Glyph(p base.Piece) string {
	if p.Kind == base.NoKind || int(p.Kind) >= len(glyphs[0]) {
		return " "
	}
	return glyphs[p.Side][p.Kind]
}

// Printer draws a board to a terminal, with colors only when out is a TTY.
type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter(out io.Writer) *Printer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{out: out, color: color}
}

func (p *Printer) SetColor(on bool) {
	p.color = on
}

func (p *Printer) PrintBoard(b material.PieceLookup) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "   a  b  c  d  e  f  g  h")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(p.out, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			piece, ok := b.PieceAt(base.NewSquare(file, rank))
			g := " "
			if ok {
				g = Glyph(piece)
			}
			if !p.color {
				if !ok {
					g = "."
				}
				fmt.Fprintf(p.out, " %s ", g)
				continue
			}

			var bg, fg string
			if (rank+file)%2 == 1 {
				bg = lightBg
				fg = blackF
			} else {
				bg = darkBg
				fg = blackF
				if ok && piece.Side == base.SideA {
					fg = whiteF
				}
			}
			if !ok {
				fg = dimF
			}
			fmt.Fprintf(p.out, "%s%s %s %s", bg, fg, g, reset)
		}
		fmt.Fprintf(p.out, " %d\n", rank+1)
	}
	fmt.Fprintln(p.out, "   a  b  c  d  e  f  g  h")
	fmt.Fprintln(p.out)
}

// PrintCaptured writes one line per side listing the pieces it has taken.
func (p *Printer) PrintCaptured(b material.PieceLookup) {
	for _, side := range []base.Side{base.SideA, base.SideB} {
		fmt.Fprintf(p.out, "%v captured:", side)
		for _, k := range material.CapturedBy(b, side).Glyphs() {
			fmt.Fprintf(p.out, " %s", Glyph(base.Piece{Kind: k, Side: side.Opponent()}))
		}
		fmt.Fprintln(p.out)
	}
}
