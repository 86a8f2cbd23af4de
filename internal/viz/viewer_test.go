package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/nucviz/internal/physics"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, v Viewer, msg tea.Msg) Viewer {
	t.Helper()
	m, _ := v.Update(msg)
	nv, ok := m.(Viewer)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return nv
}

func TestNewViewerCoarsensGrid(t *testing.T) {
	v, err := NewViewer(physics.DefaultShapeParams(), ThemeCoolwarm, false)
	if err != nil {
		t.Fatal(err)
	}
	if v.params.Points != viewerPoints {
		t.Errorf("points = %d, want %d", v.params.Points, viewerPoints)
	}
}

func TestNewViewerRejectsInvalid(t *testing.T) {
	p := physics.DefaultShapeParams()
	p.M = 5
	if _, err := NewViewer(p, ThemeCoolwarm, false); err == nil {
		t.Error("expected error for |m| > l")
	}
}

func TestViewerKeys(t *testing.T) {
	v, err := NewViewer(physics.DefaultShapeParams(), ThemeCoolwarm, false)
	if err != nil {
		t.Fatal(err)
	}

	v = press(t, v, key("."))
	if v.params.L != 4 {
		t.Errorf("l = %d, want 4", v.params.L)
	}
	v = press(t, v, key("m"))
	if v.params.M != -1 {
		t.Errorf("m = %d, want -1", v.params.M)
	}
	v = press(t, v, key("]"))
	if v.params.Beta < 0.349 || v.params.Beta > 0.351 {
		t.Errorf("beta = %g, want 0.35", v.params.Beta)
	}
	az := v.camera.Azimuth
	v = press(t, v, tea.KeyMsg{Type: tea.KeyLeft})
	if v.camera.Azimuth >= az {
		t.Error("left did not rotate")
	}
	v = press(t, v, key("t"))
	if v.theme.Name != "viridis" {
		t.Errorf("theme = %s, want viridis", v.theme.Name)
	}

	v = press(t, v, key("r"))
	if v.params != v.initial {
		t.Errorf("reset left params %+v", v.params)
	}
}

func TestViewerClampsMultipole(t *testing.T) {
	p := physics.DefaultShapeParams()
	p.L, p.M = 0, 0
	v, err := NewViewer(p, ThemeCoolwarm, false)
	if err != nil {
		t.Fatal(err)
	}
	v = press(t, v, key(","))
	v = press(t, v, key("M"))
	if v.params.L != 0 || v.params.M != 0 {
		t.Errorf("got l=%d m=%d, want 0 0", v.params.L, v.params.M)
	}
}

func TestViewerQuit(t *testing.T) {
	v, err := NewViewer(physics.DefaultShapeParams(), ThemeCoolwarm, false)
	if err != nil {
		t.Fatal(err)
	}
	_, cmd := v.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewerView(t *testing.T) {
	v, err := NewViewer(physics.DefaultShapeParams(), ThemeCoolwarm, false)
	if err != nil {
		t.Fatal(err)
	}
	out := v.View()
	if !strings.Contains(out, "OCTUPOLE_Y30") {
		t.Error("view should name the shape")
	}
}
