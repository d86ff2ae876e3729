package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/projection"
	"tableflip.dev/daygrid/pkg/record"
)

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints a single month grid. Days carrying any data render bold;
// today renders underlined.
func (pp *PrettyPrint) Month(year int, month time.Month, cells []projection.Cell) {
	tf := color.New(color.FgWhite, color.Italic)
	m := fmt.Sprintf("%s %d", month.String(), year)
	mid := (gridWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	pad := gridWidth - mid - len(m)
	if pad < 0 {
		pad = 0
	}
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", pad))

	empty := color.New(color.Faint, color.FgWhite)
	written := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)

	for i, cell := range cells {
		switch {
		case cell.Day == 0:
			fmt.Print("   ")
		case cell.IsToday:
			_, _ = today.Printf("%2d", cell.Day)
			fmt.Print(" ")
		case cell.Written && !cell.Record.IsEmpty():
			_, _ = written.Printf("%2d ", cell.Day)
		default:
			_, _ = empty.Printf("%2d ", cell.Day)
		}
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		}
	}
	if len(cells)%7 != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// Year prints the twelve fixed 6-row month grids of the year view.
func (pp *PrettyPrint) Year(year int, months [12][]projection.Cell) {
	for m := time.January; m <= time.December; m++ {
		pp.Month(year, m, months[m-1])
	}
}

// Week prints seven day columns as rows of a table, each with its schedule.
func (pp *PrettyPrint) Week(cols [7]projection.DayColumn) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "DOTS", "SCHEDULE")

	for _, col := range cols {
		label := col.Date.Format("Mon Jan 2")
		if col.IsToday {
			label = "*" + label
		}

		dots := make([]string, 0, len(col.Record.Dots))
		for _, d := range col.Record.Dots {
			dots = append(dots, d.String())
		}

		blocks := make([]string, 0, len(col.Blocks))
		for _, b := range col.Blocks {
			blocks = append(blocks, fmt.Sprintf("%s-%s %s", b.Start, b.End, b.Title))
		}

		tbl.AddRow(label, strings.Join(dots, ","), strings.Join(blocks, "; "))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Day prints a full day: note, dots, schedule, content, and the per-category
// scheduled time summary.
func (pp *PrettyPrint) Day(s projection.DaySummary) {
	title := s.Date.Format(dates.LayoutUS)
	if s.IsToday {
		title += " (today)"
	}
	pp.Title(title)

	if s.Record.DayColor != 0 {
		c := color.New(color.Faint)
		_, _ = c.Printf("day color: %s\n", s.Record.DayColor)
	}
	pp.Dots(s.Record.Dots)
	pp.Note(s.Record.Note)
	pp.NewLine()
	pp.TimeBlocks(s.Record.TimeBlocks)
	pp.ContentBlocks(s.Record.ContentBlocks)
	pp.Summary(s.Totals, s.Total)
}

// Summary prints the active per-category totals. Categories with zero
// scheduled minutes never appear.
func (pp *PrettyPrint) Summary(totals []projection.CategoryTotal, total int) {
	if len(totals) == 0 {
		return
	}
	pp.NewLine()
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, ct := range totals {
		tbl.AddRow(string(ct.Category), dates.FormatDuration(ct.Minutes))
	}
	tbl.AddRow("total", dates.FormatDuration(total))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Legend prints the available marker colors, for help output.
func (pp *PrettyPrint) Legend() {
	f := color.New(color.Faint)
	names := make([]string, 0, 7)
	for _, c := range record.AllColors() {
		names = append(names, c.String())
	}
	_, _ = f.Printf("colors: %s\n", strings.Join(names, ", "))
}
