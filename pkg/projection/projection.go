// Package projection derives the cells each calendar layout needs from the
// day record store. Projections are pure reads: they never mutate the store
// and recompute "today" from the injected clock on every call.
package projection

import (
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/record"
)

// Lookup resolves a day to its stored record, if any. It matches the store's
// Lookup method so projections stay decoupled from the persistence type.
type Lookup func(year int, month time.Month, day int) (record.DayRecord, bool)

// Cell is one slot of a month grid. Day is zero for padding cells.
type Cell struct {
	Day     int
	Record  record.DayRecord
	Written bool
	IsToday bool
}

// MonthGrid lays out a single month: leading blanks up to the first weekday,
// one cell per day, then exactly enough trailing blanks to complete the last
// row. Total cell count is ceil((firstWeekday+daysInMonth)/7)*7.
func MonthGrid(year int, month time.Month, now time.Time, lookup Lookup) []Cell {
	return grid(year, month, now, lookup, false)
}

// YearMonthGrid lays out one month of the year view. The grid always
// reserves 6 rows of 7 cells so the twelve months align visually, padding
// with blanks regardless of month length.
func YearMonthGrid(year int, month time.Month, now time.Time, lookup Lookup) []Cell {
	return grid(year, month, now, lookup, true)
}

const yearGridCells = 6 * 7

func grid(year int, month time.Month, now time.Time, lookup Lookup, fixedRows bool) []Cell {
	days := dates.DaysIn(year, month)
	lead := int(dates.FirstWeekday(year, month))

	total := lead + days
	total = (total + 6) / 7 * 7
	if fixedRows {
		total = yearGridCells
	}

	ny, nm, nd := now.Date()
	today := 0
	if ny == year && nm == month {
		today = nd
	}

	cells := make([]Cell, 0, total)
	for i := 0; i < total; i++ {
		day := i - lead + 1
		if day < 1 || day > days {
			cells = append(cells, Cell{})
			continue
		}
		cell := Cell{Day: day, IsToday: day == today}
		if r, ok := lookup(year, month, day); ok {
			cell.Record = r
			cell.Written = true
		} else {
			cell.Record = record.Empty()
		}
		cells = append(cells, cell)
	}
	return cells
}

// YearGrid produces the twelve month grids of the year view, January first.
func YearGrid(year int, now time.Time, lookup Lookup) [12][]Cell {
	var months [12][]Cell
	for m := time.January; m <= time.December; m++ {
		months[m-1] = YearMonthGrid(year, m, now, lookup)
	}
	return months
}

// DayColumn is one day of the week view. Blocks are the day's time blocks
// sorted by start time.
type DayColumn struct {
	Date    time.Time
	Record  record.DayRecord
	Blocks  []record.TimeBlock
	IsToday bool
}

// Week returns the 7 consecutive days starting from the Sunday on or before
// the focus date.
func Week(focus time.Time, now time.Time, lookup Lookup) [7]DayColumn {
	start := dates.WeekStart(focus)
	var cols [7]DayColumn
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		r, ok := lookup(date.Year(), date.Month(), date.Day())
		if !ok {
			r = record.Empty()
		}
		r.SortTimeBlocks()
		cols[i] = DayColumn{
			Date:    date,
			Record:  r,
			Blocks:  r.TimeBlocks,
			IsToday: dates.SameDay(date, now),
		}
	}
	return cols
}

// CategoryTotal is the scheduled minutes for one active category.
type CategoryTotal struct {
	Category record.Category
	Minutes  int
}

// DaySummary is the day view: the focus day's record plus per-category
// scheduled-minute totals.
type DaySummary struct {
	Date    time.Time
	Record  record.DayRecord
	Totals  []CategoryTotal
	Total   int
	IsToday bool
}

// Day projects a single day. Categories whose blocks sum to zero minutes are
// omitted from Totals; blocks that would cross midnight count as zero and so
// never surface a category on their own.
func Day(focus time.Time, now time.Time, lookup Lookup) DaySummary {
	r, ok := lookup(focus.Year(), focus.Month(), focus.Day())
	if !ok {
		r = record.Empty()
	}
	r.SortTimeBlocks()

	byCategory := map[record.Category]int{}
	total := 0
	for _, b := range r.TimeBlocks {
		mins := b.Minutes()
		if mins <= 0 {
			continue
		}
		byCategory[b.Category] += mins
		total += mins
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, c := range record.AllCategories() {
		if mins, ok := byCategory[c]; ok && mins > 0 {
			totals = append(totals, CategoryTotal{Category: c, Minutes: mins})
		}
	}

	return DaySummary{
		Date:    dates.Midnight(focus),
		Record:  r,
		Totals:  totals,
		Total:   total,
		IsToday: dates.SameDay(focus, now),
	}
}
