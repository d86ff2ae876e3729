package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daygrid/pkg/dates"
	"tableflip.dev/daygrid/pkg/record"
)

// Theme is the persisted light/dark preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Panel width bounds. Persisted widths are clamped into this range on load.
const (
	PanelWidthMin     = 200
	PanelWidthMax     = 600
	PanelWidthDefault = 320
)

// Storage keys. The day-record map lives under a single key and is rewritten
// in full on every mutation; theme and panel width are independent keys.
const (
	daysKey  = "days"
	themeKey = "theme"
	panelKey = "panel"
)

// Persistence is the day record store plus the two auxiliary preference
// slots. Reads never fail: a missing day yields the default empty record and
// a broken backing store behaves as if it were empty. Writes update memory
// first and degrade to a stderr warning when the disk copy cannot be saved.
type Persistence interface {
	// Lookup returns the stored record and whether one exists. Callers who
	// just want the default-on-miss behavior should use Get.
	Lookup(year int, month time.Month, day int) (record.DayRecord, bool)
	// Get returns the stored record, substituting the empty default when the
	// day has never been written.
	Get(year int, month time.Month, day int) record.DayRecord
	// Set replaces the whole record for the day and persists the full store.
	Set(year int, month time.Month, day int, r record.DayRecord)
	// Months returns the keys of months holding at least one record.
	Months() []string

	Theme() Theme
	SetTheme(t Theme)
	PanelWidth() int
	SetPanelWidth(px int)

	// Watch streams change events from the backing storage until ctx is
	// cancelled. Lets a second process refresh instead of silently losing
	// the last-writer-wins race.
	Watch(ctx context.Context) (<-chan Event, error)
}

// monthMap mirrors the persisted layout: "<year>-<monthIndex0based>" to
// "<dayOfMonth>" to DayRecord.
type monthMap map[string]map[string]record.DayRecord

// Load opens the diskv-backed store and reads the day map into memory. Any
// read failure, including corrupt JSON, degrades to an empty store.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		days:     monthMap{},
		theme:    ThemeLight,
		panel:    PanelWidthDefault,
	}
	p.load()
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string

	days  monthMap
	theme Theme
	panel int
}

// load hydrates the in-memory state once at open. Every failure path leaves
// the corresponding field at its default.
func (p *persistence) load() {
	if data, err := p.d.Read(daysKey); err == nil {
		var days monthMap
		if err := json.Unmarshal(data, &days); err != nil {
			fmt.Fprintf(os.Stderr, "store: corrupt day map, starting empty: %v\n", err)
		} else if days != nil {
			p.days = days
		}
	}

	if data, err := p.d.Read(themeKey); err == nil {
		switch Theme(data) {
		case ThemeLight, ThemeDark:
			p.theme = Theme(data)
		}
	}

	if data, err := p.d.Read(panelKey); err == nil {
		var px int
		if _, err := fmt.Sscanf(string(data), "%d", &px); err == nil {
			p.panel = clampPanel(px)
		}
	}
}

func clampPanel(px int) int {
	if px < PanelWidthMin {
		return PanelWidthMin
	}
	if px > PanelWidthMax {
		return PanelWidthMax
	}
	return px
}

func (p *persistence) Lookup(year int, month time.Month, day int) (record.DayRecord, bool) {
	m, ok := p.days[dates.MonthKey(year, month)]
	if !ok {
		return record.DayRecord{}, false
	}
	r, ok := m[dates.DayKey(day)]
	if !ok {
		return record.DayRecord{}, false
	}
	return r.Clone(), true
}

func (p *persistence) Get(year int, month time.Month, day int) record.DayRecord {
	if r, ok := p.Lookup(year, month, day); ok {
		return r
	}
	return record.Empty()
}

func (p *persistence) Set(year int, month time.Month, day int, r record.DayRecord) {
	mk := dates.MonthKey(year, month)
	// Copy-on-write of the month map keeps previously returned views stable.
	next := make(map[string]record.DayRecord, len(p.days[mk])+1)
	for k, v := range p.days[mk] {
		next[k] = v
	}
	next[dates.DayKey(day)] = r.Clone()
	p.days[mk] = next

	p.persistDays()
}

// persistDays serializes the whole day map. O(total stored data) per write,
// which is fine at a personal calendar's volume. Failures keep the in-memory
// state and warn on stderr; a reload may revert the apparent change.
func (p *persistence) persistDays() {
	data, err := json.Marshal(p.days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: encode day map: %v\n", err)
		return
	}
	if err := p.d.Write(daysKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: persist day map: %v\n", err)
	}
}

func (p *persistence) Months() []string {
	keys := make([]string, 0, len(p.days))
	for k, days := range p.days {
		if len(days) == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) Theme() Theme {
	return p.theme
}

func (p *persistence) SetTheme(t Theme) {
	if t != ThemeLight && t != ThemeDark {
		return
	}
	p.theme = t
	if err := p.d.Write(themeKey, []byte(t)); err != nil {
		fmt.Fprintf(os.Stderr, "store: persist theme: %v\n", err)
	}
}

func (p *persistence) PanelWidth() int {
	return p.panel
}

func (p *persistence) SetPanelWidth(px int) {
	p.panel = clampPanel(px)
	if err := p.d.Write(panelKey, []byte(fmt.Sprintf("%d", p.panel))); err != nil {
		fmt.Fprintf(os.Stderr, "store: persist panel width: %v\n", err)
	}
}
