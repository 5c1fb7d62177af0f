package main

// ---------------------------------------------------------------------------
// Summary aggregation
// ---------------------------------------------------------------------------

// totalsByKind sums rep counts per exercise kind. Events whose slug falls
// outside the enumeration are skipped.
func totalsByKind(events []workout) map[exerciseKind]int {
	totals := make(map[exerciseKind]int, exerciseKindCount)
	for _, w := range events {
		for _, k := range allExerciseKinds() {
			if w.exercise == k.slug() {
				totals[k] += w.count
				break
			}
		}
	}
	return totals
}

// comparisonRow holds the individual rep counts of one exercise kind on one
// day, in chronological order, plus their sum.
type comparisonRow struct {
	label string
	reps  []int
	sum   int
}

// comparisonTable is the main screen's today-vs-previous-session table. The
// table is jagged-aware: columns is the maximum number of entries across all
// (exercise x day) groups, and shorter rows are padded with empty cells when
// rendered.
type comparisonTable struct {
	prevDate string // "" when no prior session exists
	columns  int
	rows     []comparisonRow
}

// buildComparison shapes today's and the previous session's events into the
// comparative table. Events are expected in chronological order, as returned
// by EventsOnDate.
func buildComparison(todayEvents, prevEvents []workout, prevDate string) comparisonTable {
	t := comparisonTable{prevDate: prevDate}
	for _, k := range allExerciseKinds() {
		t.rows = append(t.rows, makeComparisonRow(k, "today", todayEvents))
		prevLabel := "previous"
		if prevDate != "" {
			prevLabel = prevDate
		}
		t.rows = append(t.rows, makeComparisonRow(k, prevLabel, prevEvents))
	}
	for _, row := range t.rows {
		if len(row.reps) > t.columns {
			t.columns = len(row.reps)
		}
	}
	return t
}

func makeComparisonRow(kind exerciseKind, day string, events []workout) comparisonRow {
	row := comparisonRow{label: kind.label() + " · " + day}
	for _, w := range events {
		if w.exercise != kind.slug() {
			continue
		}
		row.reps = append(row.reps, w.count)
		row.sum += w.count
	}
	return row
}
