// Package printers renders the calendar projections for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daygrid/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Dots renders the marker colors of a day as named labels.
func (pp *PrettyPrint) Dots(dots []record.ColorCode) {
	if len(dots) == 0 {
		return
	}
	names := make([]string, 0, len(dots))
	for _, d := range dots {
		names = append(names, d.String())
	}
	c := color.New(color.Faint)
	_, _ = c.Printf("dots: %s\n", strings.Join(names, ", "))
}

// Note prints the legacy free-text note, if any.
func (pp *PrettyPrint) Note(note string) {
	if note == "" {
		return
	}
	t := color.New()
	for _, line := range strings.Split(note, "\n") {
		_, _ = t.Printf("  %s\n", line)
	}
}

// TimeBlocks prints a day's schedule as a table, sorted order preserved.
func (pp *PrettyPrint) TimeBlocks(blocks []record.TimeBlock) {
	if len(blocks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, b := range blocks {
		if pp.ShowID {
			tbl.AddRow(b.ID, b.Start+"-"+b.End, string(b.Category), b.Title)
		} else {
			tbl.AddRow(b.Start+"-"+b.End, string(b.Category), b.Title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// ContentBlocks prints the day-notes content in stored order, one rendering
// per block kind.
func (pp *PrettyPrint) ContentBlocks(blocks record.Blocks) {
	if len(blocks) == 0 {
		return
	}

	t := color.New()
	h := color.New(color.Bold)
	f := color.New(color.Faint)
	link := color.New(color.FgBlue, color.Underline)

	for _, b := range blocks {
		if pp.ShowID {
			_, _ = f.Printf("%s\n", b.BlockID())
		}
		switch v := b.(type) {
		case record.TextBlock:
			_, _ = t.Println(v.Text)
		case record.HeadingBlock:
			_, _ = h.Println(v.Text)
		case record.ChecklistBlock:
			for _, item := range v.Items {
				box := "[ ]"
				if item.Checked {
					box = "[x]"
				}
				_, _ = t.Printf("%s %s\n", box, item.Text)
			}
		case record.BulletsBlock:
			for _, item := range v.Items {
				_, _ = t.Printf("• %s\n", item.Text)
			}
		case record.CodeBlock:
			_, _ = f.Printf("```%s\n", v.Language)
			_, _ = t.Println(v.Code)
			_, _ = f.Println("```")
		case record.LinkBlock:
			title := v.Title
			if title == "" {
				title = v.URL
			}
			_, _ = link.Println(title)
			if v.Description != "" {
				_, _ = f.Printf("  %s\n", v.Description)
			}
		case record.DividerBlock:
			_, _ = f.Println(strings.Repeat("─", 20))
		}
	}
}
