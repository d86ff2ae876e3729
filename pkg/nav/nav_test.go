package nav

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDayModeNextRollsOverYear(t *testing.T) {
	s := State{Mode: ViewDay, Focus: date(2025, time.December, 31)}
	s = s.Next()
	if s.Focus.Year() != 2026 || s.Focus.Month() != time.January || s.Focus.Day() != 1 {
		t.Fatalf("expected Jan 1 2026, got %v", s.Focus)
	}
}

func TestDayModeYearOfNexts(t *testing.T) {
	// 365 days from Jan 1 of a non-leap year is Jan 1 of the next one.
	s := State{Mode: ViewDay, Focus: date(2025, time.January, 1)}
	for i := 0; i < 365; i++ {
		s = s.Next()
	}
	if s.Focus.Year() != 2026 || s.Focus.Month() != time.January || s.Focus.Day() != 1 {
		t.Fatalf("expected Jan 1 2026 after 365 steps, got %v", s.Focus)
	}
}

func TestDayModeLeapFebruary(t *testing.T) {
	s := State{Mode: ViewDay, Focus: date(2024, time.February, 28)}
	s = s.Next()
	if s.Focus.Day() != 29 {
		t.Fatalf("expected Feb 29 2024, got %v", s.Focus)
	}
	s = s.Next()
	if s.Focus.Month() != time.March || s.Focus.Day() != 1 {
		t.Fatalf("expected Mar 1 2024, got %v", s.Focus)
	}
}

func TestMonthModePrevRollsToPriorYear(t *testing.T) {
	s := State{Mode: ViewMonth, Focus: date(2025, time.January, 15)}
	s = s.Prev()
	if s.Focus.Year() != 2024 || s.Focus.Month() != time.December {
		t.Fatalf("expected December 2024, got %v", s.Focus)
	}
}

func TestMonthModeNextFromLongMonthEnd(t *testing.T) {
	// Jan 31 + one month must land in February, not March.
	s := State{Mode: ViewMonth, Focus: date(2025, time.January, 31)}
	s = s.Next()
	if s.Focus.Month() != time.February {
		t.Fatalf("expected February, got %v", s.Focus)
	}
}

func TestWeekModeStepsSevenDays(t *testing.T) {
	s := State{Mode: ViewWeek, Focus: date(2025, time.June, 11)}
	next := s.Next()
	if next.Focus.Day() != 18 {
		t.Fatalf("expected June 18, got %v", next.Focus)
	}
	prev := s.Prev()
	if prev.Focus.Day() != 4 {
		t.Fatalf("expected June 4, got %v", prev.Focus)
	}
}

func TestYearModeStepsYear(t *testing.T) {
	s := State{Mode: ViewYear, Focus: date(2025, time.June, 11)}
	s = s.Next()
	if s.Focus.Year() != 2026 || s.Focus.Month() != time.June {
		t.Fatalf("expected June 2026, got %v", s.Focus)
	}
	s = s.Prev().Prev()
	if s.Focus.Year() != 2024 {
		t.Fatalf("expected 2024, got %v", s.Focus)
	}
}

func TestGoToTodayPreservesMode(t *testing.T) {
	now := time.Date(2025, time.June, 11, 15, 4, 5, 0, time.Local)
	s := State{Mode: ViewWeek, Focus: date(1999, time.March, 3)}
	s = s.GoToToday(now)
	if s.Mode != ViewWeek {
		t.Fatalf("mode changed: %v", s.Mode)
	}
	if !s.Focus.Equal(date(2025, time.June, 11)) {
		t.Fatalf("expected focus at today's midnight, got %v", s.Focus)
	}
}

func TestSelectDaySwitchesToDayView(t *testing.T) {
	s := State{Mode: ViewYear, Focus: date(2025, time.January, 1)}
	s = s.SelectDay(date(2025, time.August, 9))
	if s.Mode != ViewDay {
		t.Fatalf("expected day mode, got %v", s.Mode)
	}
	if s.Focus.Month() != time.August || s.Focus.Day() != 9 {
		t.Fatalf("unexpected focus %v", s.Focus)
	}
}

func TestSetViewModePreservesFocus(t *testing.T) {
	s := State{Mode: ViewDay, Focus: date(2025, time.August, 9)}
	s = s.SetViewMode(ViewYear)
	if s.Mode != ViewYear {
		t.Fatalf("expected year mode, got %v", s.Mode)
	}
	if s.Focus.Day() != 9 {
		t.Fatalf("focus changed: %v", s.Focus)
	}
}

func TestParseViewMode(t *testing.T) {
	for _, m := range AllViewModes() {
		got, err := ParseViewMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseViewMode(%s) = (%v, %v)", m, got, err)
		}
	}
	if _, err := ParseViewMode("decade"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
