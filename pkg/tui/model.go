// Package tui is the interactive calendar. It drives the same navigation
// state machine and store mutations as the CLI verbs, with a ":" prompt
// wired to the free-text interpreter.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/interpret"
	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/projection"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

// thinkDelay is the cosmetic pause between submitting a prompt and showing
// the interpreter's response. Purely visual; nothing waits on it.
const thinkDelay = 400 * time.Millisecond

type storeChangedMsg struct{}

type interpretedMsg struct {
	action   interpret.Action
	response string
}

// Model is the bubbletea model for the calendar UI.
type Model struct {
	persistence store.Persistence
	state       nav.State
	styles      Styles

	prompt    textinput.Model
	prompting bool
	thinking  bool
	response  string

	events <-chan store.Event
	cancel context.CancelFunc

	width  int
	height int
}

// New builds the model, starting focused on today in month view.
func New(p store.Persistence) *Model {
	prompt := textinput.New()
	prompt.Placeholder = `try "today" or "note: ..."`
	prompt.Prompt = ": "
	prompt.CharLimit = 120

	styles := DarkStyles()
	if p.Theme() == store.ThemeLight {
		styles = LightStyles()
	}

	return &Model{
		persistence: p,
		state:       nav.New(time.Now()),
		styles:      styles,
		prompt:      prompt,
	}
}

// Run starts the program and blocks until it exits.
func Run(p store.Persistence) error {
	m := New(p)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if m.cancel != nil {
		m.cancel()
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	if events, err := m.persistence.Watch(ctx); err == nil {
		m.events = events
		return m.waitForChange()
	}
	return nil
}

// waitForChange bridges store watch events into the update loop.
func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-m.events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case storeChangedMsg:
		// Projections read the store on every View; nothing to invalidate.
		return m, m.waitForChange()

	case interpretedMsg:
		m.thinking = false
		m.response = msg.response
		m.apply(msg.action)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.state = m.state.Prev()
	case "right", "l":
		m.state = m.state.Next()
	case "t":
		m.state = m.state.GoToToday(time.Now())
	case "y":
		m.state = m.state.SetViewMode(nav.ViewYear)
	case "m":
		m.state = m.state.SetViewMode(nav.ViewMonth)
	case "w":
		m.state = m.state.SetViewMode(nav.ViewWeek)
	case "d":
		m.state = m.state.SetViewMode(nav.ViewDay)
	case "enter":
		m.state = m.state.SelectDay(m.state.Focus)
	case ":":
		m.prompting = true
		m.response = ""
		m.prompt.SetValue("")
		return m, m.prompt.Focus()
	}
	return m, nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompting = false
		m.prompt.Blur()
		return m, nil
	case "enter":
		text := m.prompt.Value()
		m.prompting = false
		m.thinking = true
		m.prompt.Blur()
		return m, tea.Tick(thinkDelay, func(time.Time) tea.Msg {
			action, response := interpret.Interpret(text, time.Now())
			return interpretedMsg{action: action, response: response}
		})
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// apply routes an interpreter action to the navigation state or the store,
// the same operations direct key handling uses.
func (m *Model) apply(a interpret.Action) {
	switch a.Kind {
	case interpret.KindNavigate:
		m.state.Focus = dates.Midnight(a.Date)
		if a.SwitchView {
			m.state.Mode = a.View
		}
	case interpret.KindSetView:
		m.state = m.state.SetViewMode(a.View)
	case interpret.KindAddNote:
		y, mo, d := time.Now().Date()
		r := m.persistence.Get(y, mo, d)
		r.AppendNote(a.Note)
		m.persistence.Set(y, mo, d, r)
	case interpret.KindAddDot:
		y, mo, d := time.Now().Date()
		r := m.persistence.Get(y, mo, d)
		r.AddDot(a.Color)
		m.persistence.Set(y, mo, d, r)
	}
}

func (m *Model) View() string {
	now := time.Now()
	var body string
	switch m.state.Mode {
	case nav.ViewYear:
		body = m.viewYear(now)
	case nav.ViewMonth:
		body = m.viewMonth(now)
	case nav.ViewWeek:
		body = m.viewWeek(now)
	case nav.ViewDay:
		body = m.viewDay(now)
	}

	var footer string
	switch {
	case m.prompting:
		footer = m.prompt.View()
	case m.thinking:
		footer = m.styles.Response.Render("thinking...")
	case m.response != "":
		footer = m.styles.Response.Render(m.response)
	default:
		footer = m.styles.Faint.Render(
			"h/l prev/next  t today  y/m/w/d views  enter select  : command  q quit")
	}

	return body + "\n" + footer + "\n"
}

func (m *Model) viewMonth(now time.Time) string {
	header := m.styles.Header.Render(
		fmt.Sprintf("%s %d", m.state.Focus.Month(), m.state.Focus.Year()))
	grid := m.renderGrid(
		projection.MonthGrid(m.state.Focus.Year(), m.state.Focus.Month(), now, m.persistence.Lookup),
		m.state.Focus.Day())
	return header + "\n" + m.styles.Faint.Render("Su Mo Tu We Th Fr Sa") + "\n" + grid
}

func (m *Model) viewYear(now time.Time) string {
	header := m.styles.Header.Render(fmt.Sprintf("%d", m.state.Focus.Year()))
	months := projection.YearGrid(m.state.Focus.Year(), now, m.persistence.Lookup)

	cols := make([]string, 0, 12)
	for mo := time.January; mo <= time.December; mo++ {
		label := m.styles.Faint.Render(mo.String()[:3])
		sel := 0
		if mo == m.state.Focus.Month() {
			sel = m.state.Focus.Day()
		}
		cols = append(cols, label+"\n"+m.renderGrid(months[mo-1], sel))
	}

	// Four months per row keeps the year readable at typical widths.
	var rows []string
	for i := 0; i < 12; i += 4 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			cols[i], "  ", cols[i+1], "  ", cols[i+2], "  ", cols[i+3]))
	}
	return header + "\n" + strings.Join(rows, "\n\n")
}

// renderGrid draws month cells seven to a row. selected is the day to
// highlight, zero for none.
func (m *Model) renderGrid(cells []projection.Cell, selected int) string {
	var b strings.Builder
	for i, cell := range cells {
		switch {
		case cell.Day == 0:
			b.WriteString("  ")
		default:
			text := fmt.Sprintf("%2d", cell.Day)
			style := m.styles.Faint
			if cell.Written && !cell.Record.IsEmpty() {
				style = m.styles.Entry
			}
			if cell.IsToday {
				style = style.Inherit(m.styles.Today)
			}
			if cell.Day == selected {
				style = style.Inherit(m.styles.Selected)
			}
			b.WriteString(style.Render(text))
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewWeek(now time.Time) string {
	cols := projection.Week(m.state.Focus, now, m.persistence.Lookup)
	header := m.styles.Header.Render(
		"Week of " + cols[0].Date.Format(dates.LayoutUS))

	var lines []string
	for _, col := range cols {
		label := col.Date.Format("Mon Jan 2")
		style := m.styles.Faint
		if col.IsToday {
			style = m.styles.Today
		}
		if dates.SameDay(col.Date, m.state.Focus) {
			style = style.Inherit(m.styles.Selected)
		}
		line := style.Render(label)
		for _, d := range col.Record.Dots {
			line += " " + dotGlyph(int(d))
		}
		lines = append(lines, line)
		for _, block := range col.Blocks {
			lines = append(lines, m.styles.Faint.Render(
				fmt.Sprintf("    %s-%s %s", block.Start, block.End, block.Title)))
		}
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func (m *Model) viewDay(now time.Time) string {
	s := projection.Day(m.state.Focus, now, m.persistence.Lookup)
	title := s.Date.Format(dates.LayoutUS)
	if s.IsToday {
		title += " (today)"
	}
	header := m.styles.Header.Render(title)

	var lines []string
	if len(s.Record.Dots) > 0 {
		glyphs := make([]string, 0, len(s.Record.Dots))
		for _, d := range s.Record.Dots {
			glyphs = append(glyphs, dotGlyph(int(d)))
		}
		lines = append(lines, strings.Join(glyphs, " "))
	}
	if s.Record.Note != "" {
		lines = append(lines, s.Record.Note)
	}
	for _, b := range s.Record.TimeBlocks {
		lines = append(lines, fmt.Sprintf("%s-%s  %-8s  %s", b.Start, b.End, b.Category, b.Title))
	}
	lines = append(lines, m.renderContent(s.Record.ContentBlocks)...)
	if len(s.Totals) > 0 {
		lines = append(lines, "")
		for _, ct := range s.Totals {
			lines = append(lines, m.styles.Status.Render(
				fmt.Sprintf("%-8s %s", ct.Category, dates.FormatDuration(ct.Minutes))))
		}
		lines = append(lines, m.styles.Status.Render(
			fmt.Sprintf("%-8s %s", "total", dates.FormatDuration(s.Total))))
	}
	if len(lines) == 0 {
		lines = append(lines, m.styles.Faint.Render("nothing here yet"))
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func (m *Model) renderContent(blocks record.Blocks) []string {
	var lines []string
	for _, b := range blocks {
		switch v := b.(type) {
		case record.TextBlock:
			lines = append(lines, v.Text)
		case record.HeadingBlock:
			lines = append(lines, m.styles.Header.Render(v.Text))
		case record.ChecklistBlock:
			for _, item := range v.Items {
				box := "[ ]"
				if item.Checked {
					box = "[x]"
				}
				lines = append(lines, box+" "+item.Text)
			}
		case record.BulletsBlock:
			for _, item := range v.Items {
				lines = append(lines, "• "+item.Text)
			}
		case record.CodeBlock:
			lines = append(lines, m.styles.Faint.Render("```"+v.Language))
			lines = append(lines, v.Code)
			lines = append(lines, m.styles.Faint.Render("```"))
		case record.LinkBlock:
			title := v.Title
			if title == "" {
				title = v.URL
			}
			lines = append(lines, m.styles.Status.Render(title))
		case record.DividerBlock:
			lines = append(lines, m.styles.Faint.Render(strings.Repeat("─", 20)))
		}
	}
	return lines
}
