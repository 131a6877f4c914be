package main

import (
	"fmt"
	"os"
	"politicalchess/ui"
)

func main() {
	if err := ui.RunPoliticalChess(); err != nil {
		fmt.Fprintf(os.Stderr, "politicalchess: %v\n", err)
		os.Exit(1)
	}
}
