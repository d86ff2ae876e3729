package prefs

import (
	"context"
	"testing"

	"tableflip.dev/daygrid/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestThemeSetAndShow(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	s := Theme{Value: "dark", Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("set theme: %v", err)
	}
	if p.Theme() != store.ThemeDark {
		t.Fatalf("theme = %q, want dark", p.Theme())
	}

	show := Theme{Persistence: p}
	if err := show.Do(context.Background()); err != nil {
		t.Fatalf("show theme: %v", err)
	}
}

func TestThemeRejectsUnknown(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	s := Theme{Value: "sepia", Persistence: p}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown theme")
	}
	if p.Theme() != store.ThemeLight {
		t.Fatalf("theme changed to %q on rejected input", p.Theme())
	}
}

func TestPanelClampsOnSet(t *testing.T) {
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	s := Panel{Width: 50, Set: true, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("set panel: %v", err)
	}
	if p.PanelWidth() != store.PanelWidthMin {
		t.Fatalf("panel = %d, want clamped to %d", p.PanelWidth(), store.PanelWidthMin)
	}

	s = Panel{Width: 10000, Set: true, Persistence: p}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("set panel: %v", err)
	}
	if p.PanelWidth() != store.PanelWidthMax {
		t.Fatalf("panel = %d, want clamped to %d", p.PanelWidth(), store.PanelWidthMax)
	}
}

func TestNoPersistence(t *testing.T) {
	th := Theme{Value: "dark"}
	if err := th.Do(context.Background()); err == nil {
		t.Fatal("expected error without persistence")
	}
	pa := Panel{Width: 300, Set: true}
	if err := pa.Do(context.Background()); err == nil {
		t.Fatal("expected error without persistence")
	}
}
