package content

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/record"
	"tableflip.dev/daygrid/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func day() *time.Time {
	d := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.Local)
	return &d
}

func TestAddEachKind(t *testing.T) {
	p := load(t)
	on := day()

	adds := []Add{
		{Kind: record.KindText, Text: "hello"},
		{Kind: record.KindHeading, Text: "plans"},
		{Kind: record.KindChecklist, Items: []string{"milk", "bread"}},
		{Kind: record.KindBullets, Items: []string{"one"}},
		{Kind: record.KindCode, Text: "x := 1", Language: "go"},
		{Kind: record.KindLink, Text: "https://example.com", Title: "example"},
		{Kind: record.KindDivider},
	}
	for _, a := range adds {
		a.On = on
		a.Persistence = p
		if err := a.Do(context.Background()); err != nil {
			t.Fatalf("add %s: %v", a.Kind, err)
		}
	}

	r := p.Get(2026, time.March, 14)
	if len(r.ContentBlocks) != len(adds) {
		t.Fatalf("stored %d blocks, want %d", len(r.ContentBlocks), len(adds))
	}
	for i, a := range adds {
		if r.ContentBlocks[i].Kind() != a.Kind {
			t.Fatalf("block %d kind = %s, want %s", i, r.ContentBlocks[i].Kind(), a.Kind)
		}
	}
}

func TestAddRejectsUnknownKind(t *testing.T) {
	p := load(t)
	a := Add{Kind: record.BlockKind("table"), On: day(), Persistence: p}
	if err := a.Do(context.Background()); err == nil {
		t.Fatal("expected error for unknown block kind")
	}
}

func TestMoveAndRemove(t *testing.T) {
	p := load(t)
	on := day()

	for _, text := range []string{"a", "b", "c"} {
		a := Add{Kind: record.KindText, Text: text, On: on, Persistence: p}
		if err := a.Do(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	r := p.Get(2026, time.March, 14)
	second := r.ContentBlocks[1].BlockID()

	m := Move{ID: second, Direction: "up", On: on, Persistence: p}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	r = p.Get(2026, time.March, 14)
	if r.ContentBlocks[0].BlockID() != second {
		t.Fatal("expected block to move to the front")
	}

	// Moving past the front changes nothing.
	m = Move{ID: second, Direction: "up", On: on, Persistence: p}
	if err := m.Do(context.Background()); err != nil {
		t.Fatalf("move past front: %v", err)
	}
	r = p.Get(2026, time.March, 14)
	if r.ContentBlocks[0].BlockID() != second {
		t.Fatal("move past the front should leave order unchanged")
	}

	rm := Remove{ID: second, On: on, Persistence: p}
	if err := rm.Do(context.Background()); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(p.Get(2026, time.March, 14).ContentBlocks) != 2 {
		t.Fatal("expected two blocks after remove")
	}

	rm = Remove{ID: second, On: on, Persistence: p}
	if err := rm.Do(context.Background()); err == nil {
		t.Fatal("expected error removing a missing block")
	}
}

func TestMoveRejectsBadDirection(t *testing.T) {
	p := load(t)
	m := Move{ID: "x", Direction: "sideways", On: day(), Persistence: p}
	if err := m.Do(context.Background()); err == nil {
		t.Fatal("expected error for bad direction")
	}
}

func TestCheckTogglesItem(t *testing.T) {
	p := load(t)
	on := day()

	a := Add{Kind: record.KindChecklist, Items: []string{"milk"}, On: on, Persistence: p}
	if err := a.Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	r := p.Get(2026, time.March, 14)
	cl := r.ContentBlocks[0].(record.ChecklistBlock)

	c := Check{BlockID: cl.ID, ItemID: cl.Items[0].ID, On: on, Persistence: p}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("check: %v", err)
	}
	got := p.Get(2026, time.March, 14).ContentBlocks[0].(record.ChecklistBlock)
	if !got.Items[0].Checked {
		t.Fatal("item should be checked")
	}

	c = Check{BlockID: cl.ID, ItemID: "nope", On: on, Persistence: p}
	if err := c.Do(context.Background()); err == nil {
		t.Fatal("expected error for missing item")
	}
}
