package projection

import (
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/record"
)

// mapLookup backs tests with a plain map keyed by year/month/day.
type dayKey struct {
	y int
	m time.Month
	d int
}

func mapLookup(m map[dayKey]record.DayRecord) Lookup {
	return func(year int, month time.Month, day int) (record.DayRecord, bool) {
		r, ok := m[dayKey{year, month, day}]
		return r, ok
	}
}

func emptyLookup(int, time.Month, int) (record.DayRecord, bool) {
	return record.DayRecord{}, false
}

var noon = time.Date(2025, time.June, 11, 12, 0, 0, 0, time.Local)

func TestYearMonthGridAlwaysHas42Cells(t *testing.T) {
	for m := time.January; m <= time.December; m++ {
		cells := YearMonthGrid(2025, m, noon, emptyLookup)
		if len(cells) != 42 {
			t.Errorf("%s 2025: got %d cells, want 42", m, len(cells))
		}
	}
	// February of a non-leap year starting on a Sunday fits in 28 cells but
	// still pads to 42. February 2015 is exactly that month.
	cells := YearMonthGrid(2015, time.February, noon, emptyLookup)
	if len(cells) != 42 {
		t.Fatalf("February 2015: got %d cells, want 42", len(cells))
	}
	for _, c := range cells[28:] {
		if c.Day != 0 {
			t.Fatalf("expected trailing padding, got day %d", c.Day)
		}
	}
}

func TestMonthGridCellCount(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2015, time.February, 28}, // starts Sunday, 28 days: exactly 4 rows
		{2025, time.June, 35},     // starts Sunday, 30 days
		{2025, time.August, 42},   // starts Friday, 31 days: 6 rows
		{2024, time.February, 35}, // leap February starting Thursday
	}
	for _, c := range cases {
		cells := MonthGrid(c.year, c.month, noon, emptyLookup)
		if len(cells) != c.want {
			t.Errorf("%s %d: got %d cells, want %d", c.month, c.year, len(cells), c.want)
		}
	}
}

func TestGridDayPlacementAndToday(t *testing.T) {
	// June 2025 starts on a Sunday, so day 1 is cell 0.
	cells := MonthGrid(2025, time.June, noon, emptyLookup)
	if cells[0].Day != 1 {
		t.Fatalf("expected day 1 in first cell, got %d", cells[0].Day)
	}
	var todays int
	for _, c := range cells {
		if c.IsToday {
			todays++
			if c.Day != 11 {
				t.Fatalf("today marked on day %d, want 11", c.Day)
			}
		}
	}
	if todays != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todays)
	}

	// August 2025 starts on a Friday: five leading blanks.
	cells = MonthGrid(2025, time.August, noon, emptyLookup)
	for i := 0; i < 5; i++ {
		if cells[i].Day != 0 {
			t.Fatalf("cell %d should be padding, got day %d", i, cells[i].Day)
		}
	}
	if cells[5].Day != 1 {
		t.Fatalf("expected day 1 in cell 5, got %d", cells[5].Day)
	}

	// Today in another month marks nothing.
	for _, c := range MonthGrid(2025, time.July, noon, emptyLookup) {
		if c.IsToday {
			t.Fatal("no cell should be today outside the focus month")
		}
	}
}

func TestGridSubstitutesDefaultRecords(t *testing.T) {
	stored := record.Empty()
	stored.AddDot(record.Red)
	lookup := mapLookup(map[dayKey]record.DayRecord{
		{2025, time.June, 5}: stored,
	})

	cells := MonthGrid(2025, time.June, noon, lookup)
	for _, c := range cells {
		switch c.Day {
		case 0:
			continue
		case 5:
			if !c.Written || !c.Record.HasDot(record.Red) {
				t.Fatalf("stored record missing from cell: %+v", c)
			}
		default:
			if c.Written {
				t.Fatalf("day %d should be unwritten", c.Day)
			}
			if !c.Record.IsEmpty() {
				t.Fatalf("day %d should carry the empty default", c.Day)
			}
		}
	}
}

func TestWeekStartsOnSunday(t *testing.T) {
	// Focus Wednesday 2025-06-11; the week runs June 8 (Sunday) to June 14.
	cols := Week(noon, noon, emptyLookup)
	if cols[0].Date.Weekday() != time.Sunday {
		t.Fatalf("week should start on Sunday, got %s", cols[0].Date.Weekday())
	}
	if cols[0].Date.Day() != 8 || cols[6].Date.Day() != 14 {
		t.Fatalf("unexpected week range: %v .. %v", cols[0].Date, cols[6].Date)
	}
	if !cols[3].IsToday {
		t.Fatal("focus day should be marked today")
	}
}

func TestWeekSpansMonthBoundary(t *testing.T) {
	// Focus Tuesday 2025-07-01; the week starts Sunday June 29.
	focus := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.Local)
	cols := Week(focus, noon, emptyLookup)
	if cols[0].Date.Month() != time.June || cols[0].Date.Day() != 29 {
		t.Fatalf("expected week start June 29, got %v", cols[0].Date)
	}
	if cols[6].Date.Month() != time.July || cols[6].Date.Day() != 5 {
		t.Fatalf("expected week end July 5, got %v", cols[6].Date)
	}
}

func TestWeekBlocksSorted(t *testing.T) {
	r := record.Empty()
	r.TimeBlocks = []record.TimeBlock{
		{ID: "b", Start: "14:00", End: "15:00", Title: "late", Category: record.CategoryWork},
		{ID: "a", Start: "09:00", End: "10:00", Title: "early", Category: record.CategoryHealth},
	}
	lookup := mapLookup(map[dayKey]record.DayRecord{
		{2025, time.June, 11}: r,
	})

	cols := Week(noon, noon, lookup)
	blocks := cols[3].Blocks
	if len(blocks) != 2 || blocks[0].Title != "early" {
		t.Fatalf("expected blocks sorted by start, got %+v", blocks)
	}
}

func TestDayCategoryTotals(t *testing.T) {
	r := record.Empty()
	r.TimeBlocks = []record.TimeBlock{
		{ID: "1", Start: "09:00", End: "10:00", Title: "deep work", Category: record.CategoryFocus},
		{ID: "2", Start: "10:00", End: "10:30", Title: "run", Category: record.CategoryHealth},
	}
	lookup := mapLookup(map[dayKey]record.DayRecord{
		{2025, time.June, 11}: r,
	})

	s := Day(noon, noon, lookup)
	if s.Total != 90 {
		t.Fatalf("expected total 90 minutes, got %d", s.Total)
	}
	if len(s.Totals) != 2 {
		t.Fatalf("expected 2 active categories, got %+v", s.Totals)
	}
	if s.Totals[0].Category != record.CategoryFocus || s.Totals[0].Minutes != 60 {
		t.Fatalf("unexpected focus total: %+v", s.Totals[0])
	}
	if s.Totals[1].Category != record.CategoryHealth || s.Totals[1].Minutes != 30 {
		t.Fatalf("unexpected health total: %+v", s.Totals[1])
	}
	if !s.IsToday {
		t.Fatal("summary for the current date should be today")
	}
}

func TestDayOmitsZeroTotals(t *testing.T) {
	r := record.Empty()
	r.TimeBlocks = []record.TimeBlock{
		{ID: "1", Start: "09:00", End: "09:00", Title: "empty", Category: record.CategoryWork},
		{ID: "2", Start: "23:00", End: "01:00", Title: "overnight", Category: record.CategoryOther},
	}
	lookup := mapLookup(map[dayKey]record.DayRecord{
		{2025, time.June, 11}: r,
	})

	s := Day(noon, noon, lookup)
	if len(s.Totals) != 0 || s.Total != 0 {
		t.Fatalf("zero-duration categories should be omitted, got %+v", s.Totals)
	}
}

func TestDayDefaultsOnMiss(t *testing.T) {
	s := Day(noon, noon, emptyLookup)
	if !s.Record.IsEmpty() || len(s.Totals) != 0 {
		t.Fatalf("missing day should project the empty record, got %+v", s)
	}
}

func TestYearGridCoversTwelveMonths(t *testing.T) {
	months := YearGrid(2025, noon, emptyLookup)
	for i, cells := range months {
		if len(cells) != 42 {
			t.Fatalf("month %d: got %d cells, want 42", i+1, len(cells))
		}
	}
}
