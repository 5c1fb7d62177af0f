package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// The store is opened before the event loop starts; without it there is
	// nothing to run.
	db, err := openDB(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer db.Close()

	// A broken settings file falls back to defaults rather than blocking
	// startup.
	settings, _ := loadSettings()

	p := tea.NewProgram(newModel(newDBStore(db), settings), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// A failed write ends the session; report it once the terminal has been
	// restored by the program teardown above.
	if m, ok := final.(model); ok && m.fatalErr != nil {
		fmt.Fprintln(os.Stderr, "error:", m.fatalErr)
		os.Exit(1)
	}
}
