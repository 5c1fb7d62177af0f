package main

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// State machine
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMain:
			return m.updateMain(msg)
		case screenAddWorkout:
			return m.updateAddWorkout(msg)
		case screenHistory:
			return m.updateHistory(msg)
		}
	}
	return m, nil
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		m.screen = screenAddWorkout
		m.inputCount = ""
		m.status = ""
	case "h":
		m.screen = screenHistory
		m.historyCursor = 0
		m.selectedDate = ""
		m.status = ""
	}
	return m, nil
}

func (m model) updateAddWorkout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch s := msg.String(); {
	case s == "esc":
		m.screen = screenMain
		m.inputCount = ""
	case s == "tab":
		m.selectedExercise = m.selectedExercise.next()
	case isDigit(s):
		m.inputCount += s
	case s == "backspace":
		if m.inputCount != "" {
			m.inputCount = m.inputCount[:len(m.inputCount)-1]
		}
	case s == "enter":
		// A buffer that doesn't parse to a positive integer is discarded
		// silently; no feedback is shown for rejected input.
		count, err := strconv.Atoi(m.inputCount)
		if err != nil || count <= 0 {
			return m, nil
		}
		if err := m.store.Record(m.selectedExercise, count); err != nil {
			m.fatalErr = fmt.Errorf("record workout: %w", err)
			return m, tea.Quit
		}
		m.status = fmt.Sprintf("Added %d %s!", count, m.selectedExercise.slug())
		m.inputCount = ""
	}
	return m, nil
}

func (m model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back pops one level: day-detail -> date-list -> Main.
		if m.selectedDate != "" {
			m.selectedDate = ""
		} else {
			m.screen = screenMain
		}
	case "up":
		if m.selectedDate == "" && m.historyCursor > 0 {
			m.historyCursor--
		}
	case "down":
		if m.selectedDate == "" {
			// Cursor bounds come from live data, so the date list is
			// re-queried on every press rather than cached on entry.
			dates, err := m.store.DistinctDates()
			if err == nil && m.historyCursor < len(dates)-1 {
				m.historyCursor++
			}
		}
	case "enter":
		if m.selectedDate == "" {
			dates, err := m.store.DistinctDates()
			if err == nil && m.historyCursor < len(dates) {
				m.selectedDate = dates[m.historyCursor]
			}
		}
	}
	return m, nil
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
