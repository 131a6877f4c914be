package gclipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errUnsupported = errors.New("clipboard not available")

// CopyFEN puts the position on the system clipboard.
func CopyFEN(fen string) error {
	if clipboard.Unsupported {
		return errUnsupported
	}
	return clipboard.WriteAll(fen)
}
