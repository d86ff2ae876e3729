package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daygrid/pkg/interpret"
	"tableflip.dev/daygrid/pkg/nav"
	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

// memStore is an in-memory Persistence for UI tests.
type memStore struct {
	days  map[[3]int]record.DayRecord
	theme store.Theme
	panel int
}

func newMemStore() *memStore {
	return &memStore{
		days:  map[[3]int]record.DayRecord{},
		theme: store.ThemeLight,
		panel: store.PanelWidthDefault,
	}
}

func (s *memStore) Lookup(y int, m time.Month, d int) (record.DayRecord, bool) {
	r, ok := s.days[[3]int{y, int(m), d}]
	return r.Clone(), ok
}

func (s *memStore) Get(y int, m time.Month, d int) record.DayRecord {
	if r, ok := s.Lookup(y, m, d); ok {
		return r
	}
	return record.Empty()
}

func (s *memStore) Set(y int, m time.Month, d int, r record.DayRecord) {
	s.days[[3]int{y, int(m), d}] = r.Clone()
}

func (s *memStore) Months() []string            { return nil }
func (s *memStore) Theme() store.Theme          { return s.theme }
func (s *memStore) SetTheme(t store.Theme)      { s.theme = t }
func (s *memStore) PanelWidth() int             { return s.panel }
func (s *memStore) SetPanelWidth(px int)        { s.panel = px }
func (s *memStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestViewModeKeys(t *testing.T) {
	m := New(newMemStore())

	cases := []struct {
		key  string
		want nav.ViewMode
	}{
		{"y", nav.ViewYear},
		{"w", nav.ViewWeek},
		{"d", nav.ViewDay},
		{"m", nav.ViewMonth},
	}
	for _, c := range cases {
		next, _ := m.Update(key(c.key))
		m = next.(*Model)
		if m.state.Mode != c.want {
			t.Fatalf("key %q: mode = %v, want %v", c.key, m.state.Mode, c.want)
		}
	}
}

func TestNavigationKeys(t *testing.T) {
	m := New(newMemStore())
	m.state = nav.State{Mode: nav.ViewDay, Focus: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local)}

	next, _ := m.Update(key("l"))
	m = next.(*Model)
	if m.state.Focus.Year() != 2026 || m.state.Focus.Day() != 1 {
		t.Fatalf("expected rollover to Jan 1 2026, got %v", m.state.Focus)
	}

	next, _ = m.Update(key("h"))
	m = next.(*Model)
	if m.state.Focus.Day() != 31 {
		t.Fatalf("expected Dec 31, got %v", m.state.Focus)
	}
}

func TestEnterSelectsDay(t *testing.T) {
	m := New(newMemStore())
	if m.state.Mode != nav.ViewMonth {
		t.Fatalf("expected month start mode, got %v", m.state.Mode)
	}
	next, _ := m.Update(key("enter"))
	m = next.(*Model)
	if m.state.Mode != nav.ViewDay {
		t.Fatalf("enter should switch to day view, got %v", m.state.Mode)
	}
}

func TestInterpretedActionMutatesStore(t *testing.T) {
	s := newMemStore()
	m := New(s)

	m.apply(interpret.Action{Kind: interpret.KindAddDot, Color: record.Red})

	y, mo, d := time.Now().Date()
	if !s.Get(y, mo, d).HasDot(record.Red) {
		t.Fatal("dot action did not reach the store")
	}

	m.apply(interpret.Action{Kind: interpret.KindAddNote, Note: "buy milk"})
	if s.Get(y, mo, d).Note != "buy milk" {
		t.Fatal("note action did not reach the store")
	}
}

func TestInterpretedNavigationMovesFocus(t *testing.T) {
	m := New(newMemStore())
	target := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.Local)

	m.apply(interpret.Action{
		Kind: interpret.KindNavigate, Date: target,
		SwitchView: true, View: nav.ViewMonth,
	})
	if m.state.Focus.Month() != time.January || m.state.Mode != nav.ViewMonth {
		t.Fatalf("navigate action not applied: %+v", m.state)
	}
}

func TestViewRendersWithoutData(t *testing.T) {
	m := New(newMemStore())
	for _, mode := range nav.AllViewModes() {
		m.state = m.state.SetViewMode(mode)
		if out := m.View(); out == "" {
			t.Fatalf("empty view for mode %v", mode)
		}
	}
}
