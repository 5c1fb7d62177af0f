package main

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "RepTrack"

// exerciseKind is a member of the fixed, closed set of trackable exercises.
type exerciseKind int

const (
	exerciseSquats exerciseKind = iota
	exercisePushUps
	exerciseKindCount
)

// slug is the lower/hyphen-case form persisted in the store.
func (e exerciseKind) slug() string {
	switch e {
	case exerciseSquats:
		return "squats"
	case exercisePushUps:
		return "push-ups"
	}
	return "unknown"
}

// label is the display form shown on screen.
func (e exerciseKind) label() string {
	switch e {
	case exerciseSquats:
		return "Squats"
	case exercisePushUps:
		return "Push-ups"
	}
	return "Unknown"
}

// next cycles to the following kind, wrapping at the end of the enumeration.
func (e exerciseKind) next() exerciseKind {
	return (e + 1) % exerciseKindCount
}

// allExerciseKinds returns the enumeration in display order.
func allExerciseKinds() []exerciseKind {
	kinds := make([]exerciseKind, 0, exerciseKindCount)
	for k := exerciseKind(0); k < exerciseKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// workout is one immutable recorded event. exercise holds the persisted slug;
// rows with slugs outside the enumeration are carried through untouched and
// simply don't contribute to per-kind totals.
type workout struct {
	id        int
	exercise  string
	count     int
	timestamp string // "2006-01-02 15:04:05", local time
}

// ---------------------------------------------------------------------------
// Store contract
// ---------------------------------------------------------------------------

// workoutStore is the persistence contract the state machine is written
// against. Record's count must already be validated (> 0) by the caller.
// Dates are local calendar days in "2006-01-02" form.
type workoutStore interface {
	Record(kind exerciseKind, count int) error
	EventsOnDate(date string) ([]workout, error)
	EventsToday() ([]workout, error)
	DistinctDates() ([]string, error)
	// MostRecentDateBefore returns the largest distinct date strictly less
	// than date, or "" if no earlier events exist.
	MostRecentDateBefore(date string) (string, error)
}

// ---------------------------------------------------------------------------
// Screens
// ---------------------------------------------------------------------------

const (
	screenMain = iota
	screenAddWorkout
	screenHistory
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	store    workoutStore
	settings appSettings
	keys     keyMap

	screen           int
	selectedExercise exerciseKind
	inputCount       string // digit buffer on the add screen
	historyCursor    int
	selectedDate     string // "" = date-list sub-mode, else day-detail
	status           string

	width  int
	height int

	// Set when a store write fails; surfaced by main after the terminal is
	// restored (reads degrade, writes are fatal).
	fatalErr error
}

func newModel(store workoutStore, settings appSettings) model {
	return model{
		store:            store,
		settings:         settings,
		keys:             newKeyMap(),
		screen:           screenMain,
		selectedExercise: exerciseSquats,
	}
}
