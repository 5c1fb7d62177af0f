package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMainViewDegradesOnQueryFailure(t *testing.T) {
	store := &stubStore{queryErr: errors.New("io error")}
	m := newTestModel(store)

	view := m.View()
	if !strings.Contains(view, "Total workouts: 0") {
		t.Errorf("failed reads should render as zero totals:\n%s", view)
	}
}

func TestMainViewComparisonRespectsSetting(t *testing.T) {
	// A date safely in the past so MostRecentDateBefore(today) finds it.
	store := &stubStore{
		dates: []string{"2020-01-01"},
		eventsByDate: map[string][]workout{
			"2020-01-01": {{exercise: "squats", count: 10, timestamp: "2020-01-01 08:00:00"}},
		},
	}

	m := newTestModel(store)
	if !strings.Contains(m.View(), "previous session") {
		t.Error("comparison table missing with show_comparison enabled")
	}

	m.settings.ShowComparison = false
	if strings.Contains(m.View(), "previous session") {
		t.Error("comparison table rendered with show_comparison disabled")
	}
}

func TestRenderComparisonPadsShortRows(t *testing.T) {
	table := buildComparison(
		[]workout{
			{exercise: "squats", count: 10},
			{exercise: "squats", count: 12},
		},
		[]workout{{exercise: "push-ups", count: 8}},
		"2026-02-27",
	)
	out := renderComparison(table)

	if !strings.Contains(out, "#1") || !strings.Contains(out, "#2") {
		t.Errorf("set columns missing from header:\n%s", out)
	}
	if strings.Contains(out, "#3") {
		t.Errorf("header has more columns than the longest group:\n%s", out)
	}

	// Short rows carry empty cells rather than shifting the sum left: every
	// sum starts at the same column (22 label + 2 cells of 6).
	const sumCol = 22 + 2*6
	wantSums := []string{"22", "0", "0", "8"}
	lines := strings.Split(out, "\n")
	if len(lines) != 3+len(wantSums) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), 3+len(wantSums), out)
	}
	for i, want := range wantSums {
		plain := []rune(stripANSI(lines[3+i]))
		if len(plain) != sumCol+len(want) {
			t.Errorf("row %d width = %d, want %d:\n%s", i, len(plain), sumCol+len(want), out)
			continue
		}
		if got := string(plain[sumCol:]); got != want {
			t.Errorf("row %d sum = %q, want %q", i, got, want)
		}
	}
}

func TestDateListShowsCursor(t *testing.T) {
	store := &stubStore{dates: []string{"2026-03-03", "2026-03-01"}}
	m := press(t, newTestModel(store), "h", "down")

	view := stripANSI(m.View())
	if !strings.Contains(view, "> 2026-03-01") {
		t.Errorf("cursor marker missing from selected date:\n%s", view)
	}
	if strings.Contains(view, "> 2026-03-03") {
		t.Errorf("cursor marker on unselected date:\n%s", view)
	}
}

func TestDateListWindowFollowsCursor(t *testing.T) {
	var dates []string
	for d := 28; d >= 1; d-- {
		dates = append(dates, fmt.Sprintf("2026-02-%02d", d))
	}
	m := newTestModel(&stubStore{dates: dates})
	m.settings.HistoryRows = 5
	m = press(t, m, "h")
	for i := 0; i < 9; i++ {
		m = press(t, m, "down")
	}

	view := stripANSI(m.View())
	if !strings.Contains(view, "> 2026-02-19") {
		t.Errorf("cursor row missing from windowed list:\n%s", view)
	}
	// The top of the list scrolled out of the five-row window.
	if strings.Contains(view, "2026-02-28") {
		t.Errorf("window did not scroll past the first date:\n%s", view)
	}
}

func TestDayDetailListsEvents(t *testing.T) {
	store := &stubStore{
		dates: []string{"2026-03-01"},
		eventsByDate: map[string][]workout{
			"2026-03-01": {
				{exercise: "squats", count: 10, timestamp: "2026-03-01 08:00:00"},
				{exercise: "push-ups", count: 5, timestamp: "2026-03-01 19:15:30"},
			},
		},
	}
	m := press(t, newTestModel(store), "h", "enter")

	view := stripANSI(m.View())
	for _, want := range []string{"Workouts on 2026-03-01", "08:00:00", "10 squats", "19:15:30", "5 push-ups"} {
		if !strings.Contains(view, want) {
			t.Errorf("day detail missing %q:\n%s", want, view)
		}
	}
}

func TestHelpFooterPerScreen(t *testing.T) {
	store := &stubStore{dates: []string{"2026-03-01"}}
	m := newTestModel(store)

	if view := stripANSI(m.View()); !strings.Contains(view, "add workout") {
		t.Errorf("main footer missing add binding:\n%s", view)
	}
	m = press(t, m, "a")
	if view := stripANSI(m.View()); !strings.Contains(view, "switch exercise") {
		t.Errorf("add footer missing toggle binding:\n%s", view)
	}
	m = press(t, m, "esc", "h")
	if view := stripANSI(m.View()); !strings.Contains(view, "navigate") {
		t.Errorf("history footer missing navigation binding:\n%s", view)
	}
}

func TestAddViewShowsBufferAndStatus(t *testing.T) {
	m := press(t, newTestModel(&stubStore{}), "a", "4", "2")
	view := stripANSI(m.View())
	if !strings.Contains(view, "42") {
		t.Errorf("input buffer not rendered:\n%s", view)
	}

	m = press(t, m, "enter")
	view = stripANSI(m.View())
	if !strings.Contains(view, "Added 42 squats!") {
		t.Errorf("status message not rendered:\n%s", view)
	}
}

// stripANSI removes SGR escape sequences so assertions can match plain text.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
