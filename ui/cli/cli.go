package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"politicalchess/src"
	"politicalchess/src/base"
	"politicalchess/src/selection"
	"strings"
	"time"

	"golang.org/x/term"
)

var errQuit = errors.New("quit")

type CLIProcessing struct {
	session *src.Session
	printer *Printer
	in      io.Reader
	out     io.Writer
	now     func() time.Time
}

func NewCLI(s *src.Session, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{session: s, printer: NewPrinter(out), in: in, out: out, now: time.Now}
}

// Printer exposes the board printer, e.g. to force plain output.
func (c *CLIProcessing) Printer() *Printer {
	return c.printer
}

// raw processing
// - type a move in coordinate form (e2e4) and press Enter
// - left arrow to undo
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(f)
	var inputBuf strings.Builder

	c.redraw()
	fmt.Fprint(c.out, "\r\nType a move like e2e4 and press Enter, left arrow to undo, 'q' to quit.\r\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprint(c.out, "\r\nInterrupted\r\n")
			return nil
		}
		if b == 0x1b { // escape sequence, possibly an arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' && b2 == 'D' {
				c.undo()
			}
			continue
		}

		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			fmt.Fprint(c.out, "\r\n")
			if s == "" {
				continue
			}
			if err := c.command(s); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
			if c.session.Over() {
				c.printResult()
				return nil
			}
			continue
		}

		if b == 0x7f && inputBuf.Len() > 0 { // backspace
			s := inputBuf.String()
			inputBuf.Reset()
			inputBuf.WriteString(s[:len(s)-1])
			fmt.Fprint(c.out, "\b \b")
			continue
		}

		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// RunLineMode reads one command per line; used when input is not a terminal.
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.redraw()
	fmt.Fprintln(c.out, "Enter a move like e2e4. Use 'undo' to take back, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.command(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		if c.session.Over() {
			c.printResult()
			return nil
		}
	}
	return scanner.Err()
}

func (c *CLIProcessing) command(s string) error {
	switch strings.ToLower(s) {
	case "q", "quit":
		fmt.Fprintln(c.out, "Quitting")
		return errQuit
	case "u", "undo":
		c.undo()
		return nil
	case "fen":
		fmt.Fprintln(c.out, c.session.Board().FEN())
		return nil
	case "moves":
		fmt.Fprintln(c.out, movesString(c.session.Board().History()))
		return nil
	default:
	}

	// charge the thinking time before the turn passes
	c.session.Tick(c.now())
	if c.session.Over() {
		return nil
	}
	if !c.play(s) {
		fmt.Fprintf(c.out, "Invalid move: %s\n", s)
		return nil
	}
	c.session.Tick(c.now())
	if c.session.OpponentPending() && c.session.StepOpponent(c.now()) {
		hist := c.session.Board().History()
		fmt.Fprintf(c.out, "%v plays %v\n", base.SideB, hist[len(hist)-1])
	}
	c.redraw()
	return nil
}

// play routes a coordinate move through the same clicks a mouse would make.
func (c *CLIProcessing) play(s string) bool {
	if len(s) < 4 {
		return false
	}
	from, err := base.SquareFromAlgebraic(s[0:2])
	if err != nil {
		return false
	}
	to, err := base.SquareFromAlgebraic(s[2:4])
	if err != nil {
		return false
	}
	if act := c.session.Click(from); act != selection.Selected && act != selection.Reselected {
		return false
	}
	if c.session.Click(to) != selection.Moved {
		if c.session.Selected() != base.NoSquare {
			c.session.Click(c.session.Selected())
		}
		return false
	}
	return true
}

func (c *CLIProcessing) undo() {
	if !c.session.Undo() {
		fmt.Fprintln(c.out, "Nothing to undo")
		return
	}
	c.redraw()
}

func (c *CLIProcessing) redraw() {
	c.printer.PrintBoard(c.session)
	c.printer.PrintCaptured(c.session)
	fmt.Fprintf(c.out, "FEN: %s\n", c.session.Board().FEN())
	fmt.Fprintf(c.out, "To move: %v\n", c.session.Turn())
}

func (c *CLIProcessing) printResult() {
	fmt.Fprintln(c.out, c.session.Result().String())
}

func movesString(moves []base.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
