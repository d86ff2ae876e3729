// Package interpret maps free-text input to calendar actions. It is a flat
// pattern table over literal phrases and a few prefixes, not a grammar: one
// intent per input, first match wins, anything else gets the help response.
package interpret

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/record"
)

// Kind discriminates the action union.
type Kind int

const (
	// KindNone carries no action; the response is a help prompt.
	KindNone Kind = iota
	// KindNavigate moves the focus date, optionally switching view mode.
	KindNavigate
	// KindSetView changes only the view mode.
	KindSetView
	// KindAddNote appends note text to today.
	KindAddNote
	// KindAddDot adds a colored marker to today.
	KindAddDot
)

// Action is the result of interpreting one input.
type Action struct {
	Kind Kind

	// Date is the navigation target for KindNavigate.
	Date time.Time
	// SwitchView and View request a mode change alongside navigation, or
	// carry the mode for KindSetView.
	SwitchView bool
	View       nav.ViewMode

	// Note is the text payload for KindAddNote.
	Note string
	// Color is the marker for KindAddDot.
	Color record.ColorCode
}

const helpResponse = `Try things like "today", "next week", "January", ` +
	`"week", "note: buy milk", or "dot red".`

// Interpret matches the input against the pattern table. The returned text
// is the user-facing response; unmatched input yields KindNone and a help
// prompt.
func Interpret(input string, now time.Time) (Action, string) {
	trimmed := strings.TrimSpace(input)
	text := strings.ToLower(trimmed)
	today := dates.Midnight(now)

	switch text {
	case "today":
		return Action{Kind: KindNavigate, Date: today},
			"Jumping to today, " + today.Format(dates.LayoutUS) + "."
	case "tomorrow":
		d := today.AddDate(0, 0, 1)
		return Action{Kind: KindNavigate, Date: d},
			"Jumping to tomorrow, " + d.Format(dates.LayoutUS) + "."
	case "yesterday":
		d := today.AddDate(0, 0, -1)
		return Action{Kind: KindNavigate, Date: d},
			"Jumping to yesterday, " + d.Format(dates.LayoutUS) + "."
	case "next week":
		d := today.AddDate(0, 0, 7)
		return Action{Kind: KindNavigate, Date: d, SwitchView: true, View: nav.ViewWeek},
			"Jumping to the week of " + dates.WeekStart(d).Format(dates.LayoutUS) + "."
	case "last week":
		d := today.AddDate(0, 0, -7)
		return Action{Kind: KindNavigate, Date: d, SwitchView: true, View: nav.ViewWeek},
			"Jumping to the week of " + dates.WeekStart(d).Format(dates.LayoutUS) + "."
	}

	if mode, err := nav.ParseViewMode(text); err == nil {
		return Action{Kind: KindSetView, SwitchView: true, View: mode},
			"Switching to the " + mode.String() + " view."
	}

	if month, ok := dates.MonthByName(text); ok {
		d := time.Date(today.Year(), month, 1, 0, 0, 0, 0, today.Location())
		return Action{Kind: KindNavigate, Date: d, SwitchView: true, View: nav.ViewMonth},
			"Showing " + month.String() + fmt.Sprintf(" %d.", today.Year())
	}

	if strings.HasPrefix(text, "note:") {
		// Slice the payload from the original input so note text keeps its
		// casing.
		note := strings.TrimSpace(trimmed[len("note:"):])
		if note == "" {
			return Action{}, helpResponse
		}
		return Action{Kind: KindAddNote, Note: note},
			"Noted for today: " + note
	}

	if name, ok := strings.CutPrefix(text, "dot "); ok {
		color, err := record.ColorByName(name)
		if err != nil {
			return Action{}, "I don't know the color " + strings.TrimSpace(name) + ". " + helpResponse
		}
		return Action{Kind: KindAddDot, Color: color},
			"Added a " + color.String() + " dot to today."
	}

	return Action{}, helpResponse
}
