// Package nav models the focus date and view mode the calendar centers on,
// and the mode-dependent prev/next/today transitions between them. Every
// transition is total: date arithmetic delegates to the standard calendar so
// month, year, and leap boundaries roll over correctly.
package nav

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
)

// ViewMode selects which projection is rendered.
type ViewMode int

const (
	ViewYear ViewMode = iota
	ViewMonth
	ViewWeek
	ViewDay
)

func (m ViewMode) String() string {
	switch m {
	case ViewYear:
		return "year"
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	}
	return fmt.Sprintf("viewmode(%d)", int(m))
}

// ParseViewMode resolves a view mode keyword, case insensitively.
func ParseViewMode(raw string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "year":
		return ViewYear, nil
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "day":
		return ViewDay, nil
	}
	return 0, fmt.Errorf("nav: unknown view mode %q", raw)
}

// AllViewModes returns the modes in coarse-to-fine order.
func AllViewModes() []ViewMode {
	return []ViewMode{ViewYear, ViewMonth, ViewWeek, ViewDay}
}

// State is the navigation state: the active view mode and the focus date,
// held at local midnight.
type State struct {
	Mode  ViewMode
	Focus time.Time
}

// New starts in month view focused on the given time's calendar day.
func New(now time.Time) State {
	return State{Mode: ViewMonth, Focus: dates.Midnight(now)}
}

// Next advances the focus by one unit of the active mode: a year in year
// view, a month in month view, seven days in week view, one day in day view.
func (s State) Next() State {
	return s.step(+1)
}

// Prev moves the focus back by one unit of the active mode.
func (s State) Prev() State {
	return s.step(-1)
}

func (s State) step(dir int) State {
	switch s.Mode {
	case ViewYear:
		s.Focus = s.Focus.AddDate(dir, 0, 0)
	case ViewMonth:
		// Stepping from the first keeps AddDate from normalizing a short
		// month into the one after it.
		first := time.Date(s.Focus.Year(), s.Focus.Month(), 1, 0, 0, 0, 0, s.Focus.Location())
		s.Focus = first.AddDate(0, dir, 0)
	case ViewWeek:
		s.Focus = s.Focus.AddDate(0, 0, 7*dir)
	case ViewDay:
		s.Focus = s.Focus.AddDate(0, 0, dir)
	}
	return s
}

// GoToToday refocuses on the current date. The view mode is preserved.
func (s State) GoToToday(now time.Time) State {
	s.Focus = dates.Midnight(now)
	return s
}

// SelectDay focuses the given date and switches to day view, matching a
// click on a specific day cell.
func (s State) SelectDay(date time.Time) State {
	s.Focus = dates.Midnight(date)
	s.Mode = ViewDay
	return s
}

// SetViewMode changes only the mode; the focus date is preserved.
func (s State) SetViewMode(mode ViewMode) State {
	s.Mode = mode
	return s
}
