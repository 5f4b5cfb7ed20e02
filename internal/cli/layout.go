package cli

import (
	"os"

	"golang.org/x/term"
)

// terminalWidth is a test seam. It returns 0 when stdout is not a terminal.
var terminalWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// applyLayout adapts the list to the terminal width. An unknown width keeps
// the full layout.
func (a *App) applyLayout() {
	w := terminalWidth()
	if w <= 0 {
		a.list.SetForceTable(false)
		a.list.SetNarrow(false)
		return
	}
	a.list.SetForceTable(w < a.cfg.WideWidth)
	a.list.SetNarrow(w < a.cfg.NarrowWidth)
}
