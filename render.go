package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	labelStyle  = lipgloss.NewStyle().Foreground(colorSubtext1)
	totalStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	statusStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().Foreground(colorSubtext0).Bold(true)
	tableSumStyle    = lipgloss.NewStyle().Foreground(colorSapphire).Bold(true)
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View re-queries the store on every render so the displayed data is always
// fresh as of the last successful query. Query failures degrade to an
// empty/zero view instead of crashing.
func (m model) View() string {
	var body string
	var help []key.Binding
	switch m.screen {
	case screenAddWorkout:
		body = m.viewAddWorkout()
		help = m.keys.addHelp()
	case screenHistory:
		if m.selectedDate != "" {
			body = m.viewDayDetail()
			help = m.keys.detailHelp()
		} else {
			body = m.viewDateList()
			help = m.keys.historyHelp()
		}
	default:
		body = m.viewMain()
		help = m.keys.mainHelp()
	}
	return m.placeWithFooter(body, m.renderFooter(renderHelp(help)))
}

// ---------------------------------------------------------------------------
// Main screen
// ---------------------------------------------------------------------------

func (m model) viewMain() string {
	title := titleStyle.Render(appName) + dimStyle.Render("  ·  personal fitness log")

	events, err := m.store.EventsToday()
	if err != nil {
		events = nil
	}
	totals := totalsByKind(events)

	var lines []string
	lines = append(lines, tableHeaderStyle.Render("Today"), "")
	for _, k := range allExerciseKinds() {
		lines = append(lines, fmt.Sprintf("%s %s",
			labelStyle.Render(padRight(k.label()+":", 11)),
			totalStyle.Render(fmt.Sprintf("%d", totals[k]))))
	}
	lines = append(lines, "", noteStyle.Render(fmt.Sprintf("Total workouts: %d", len(events))))
	summary := boxStyle.Render(strings.Join(lines, "\n"))

	sections := []string{title, "", summary}
	if m.settings.ShowComparison {
		if cmp := m.comparisonView(events); cmp != "" {
			sections = append(sections, "", cmp)
		}
	}
	return strings.Join(sections, "\n")
}

// comparisonView renders today's reps against the most recent prior session.
// Store errors degrade to an absent table.
func (m model) comparisonView(todayEvents []workout) string {
	prevDate, err := m.store.MostRecentDateBefore(today())
	if err != nil {
		return ""
	}
	var prevEvents []workout
	if prevDate != "" {
		if prevEvents, err = m.store.EventsOnDate(prevDate); err != nil {
			prevEvents = nil
		}
	}
	table := buildComparison(todayEvents, prevEvents, prevDate)
	return boxStyle.Render(renderComparison(table))
}

// renderComparison lays out the jagged-aware table: one column per set, up
// to the longest group, shorter rows padded with empty cells, and a trailing
// per-row sum.
func renderComparison(t comparisonTable) string {
	const cellWidth = 6
	header := padRight("", 22)
	for i := 0; i < t.columns; i++ {
		header += padRight(fmt.Sprintf("#%d", i+1), cellWidth)
	}
	header += "Sum"
	lines := []string{tableHeaderStyle.Render("Sets, today vs. previous session"), "", tableHeaderStyle.Render(header)}
	for _, row := range t.rows {
		line := labelStyle.Render(padRight(row.label, 22))
		for i := 0; i < t.columns; i++ {
			cell := ""
			if i < len(row.reps) {
				cell = fmt.Sprintf("%d", row.reps[i])
			}
			line += padRight(cell, cellWidth)
		}
		line += tableSumStyle.Render(fmt.Sprintf("%d", row.sum))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Add-workout screen
// ---------------------------------------------------------------------------

func (m model) viewAddWorkout() string {
	title := titleStyle.Render("Add Workout")

	var kinds []string
	for _, k := range allExerciseKinds() {
		if k == m.selectedExercise {
			kinds = append(kinds, cursorStyle.Render("["+k.label()+"]"))
		} else {
			kinds = append(kinds, dimStyle.Render(" "+k.label()+" "))
		}
	}
	selector := boxStyle.Render(labelStyle.Render("Exercise:  ") + strings.Join(kinds, " "))

	input := m.inputCount
	if input == "" {
		input = dimStyle.Render("0")
	}
	count := inputBoxStyle.Render(labelStyle.Render("Count: ") + input)

	sections := []string{title, "", selector, count}
	if m.status != "" {
		sections = append(sections, "", statusStyle.Render(m.status))
	}
	return strings.Join(sections, "\n")
}

// ---------------------------------------------------------------------------
// History screens
// ---------------------------------------------------------------------------

func (m model) viewDateList() string {
	title := titleStyle.Render("Workout History")

	dates, err := m.store.DistinctDates()
	if err != nil {
		dates = nil
	}
	if len(dates) == 0 {
		return title + "\n\n" + dimStyle.Render("No workouts recorded yet.")
	}

	visible := m.settings.HistoryRows
	start := 0
	if m.historyCursor >= visible {
		start = m.historyCursor - visible + 1
	}
	end := start + visible
	if end > len(dates) {
		end = len(dates)
	}

	var lines []string
	for i := start; i < end; i++ {
		if i == m.historyCursor {
			lines = append(lines, cursorStyle.Render("> "+dates[i]))
		} else {
			lines = append(lines, "  "+dates[i])
		}
	}
	if end < len(dates) {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  … %d more", len(dates)-end)))
	}
	return title + "\n\n" + boxStyle.Render(strings.Join(lines, "\n"))
}

func (m model) viewDayDetail() string {
	title := titleStyle.Render("Workouts on " + m.selectedDate)

	events, err := m.store.EventsOnDate(m.selectedDate)
	if err != nil {
		events = nil
	}
	if len(events) == 0 {
		return title + "\n\n" + dimStyle.Render("Nothing recorded on this day.")
	}

	var lines []string
	for _, w := range events {
		lines = append(lines, fmt.Sprintf("%s  %s",
			dimStyle.Render(timeOfDay(w.timestamp)),
			fmt.Sprintf("%d %s", w.count, w.exercise)))
	}
	return title + "\n\n" + boxStyle.Render(strings.Join(lines, "\n"))
}

// timeOfDay extracts the HH:MM:SS part of a stored timestamp.
func timeOfDay(ts string) string {
	if i := strings.IndexByte(ts, ' '); i >= 0 {
		return ts[i+1:]
	}
	return ts
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}

func (m model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, m.width-footerStyle.GetHorizontalFrameSize()))
}

func (m model) placeWithFooter(body, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + footer
	}
	contentHeight := m.height - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + footer
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
