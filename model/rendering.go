package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	cellAlive = 'X'
	cellDead  = '.'

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the board, one row per line, live cells as 'X' and
// dead cells as '.'
func (r *TerminalRenderer) Display(b *Board) {
	for row := 0; row < b.Size(); row++ {
		line := make([]byte, b.Size())
		for col := 0; col < b.Size(); col++ {
			if b.Get(row, col) {
				line[col] = cellAlive
			} else {
				line[col] = cellDead
			}
		}
		fmt.Fprintf(r.Out, "%s\n", line)
	}
	fmt.Fprintln(r.Out)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
