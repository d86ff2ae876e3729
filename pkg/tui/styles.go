package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles for one theme.
type Styles struct {
	Header   lipgloss.Style
	Faint    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Prompt   lipgloss.Style
	Response lipgloss.Style
}

// DarkStyles is tuned for dark terminals.
func DarkStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Today:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("212")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		Response: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("248")),
	}
}

// LightStyles is tuned for light terminals.
func LightStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("23")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Entry:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("17")),
		Today:    lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("125")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
		Response: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
	}
}

// dotGlyphs maps marker colors to colored dot glyphs.
var dotColors = map[int]string{
	1: "196", // red
	2: "208", // orange
	3: "226", // yellow
	4: "82",  // green
	5: "39",  // blue
	6: "129", // purple
	7: "212", // pink
}

func dotGlyph(code int) string {
	c, ok := dotColors[code]
	if !ok {
		return "•"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("•")
}
