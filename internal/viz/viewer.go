package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/nucviz/internal/physics"
)

const (
	viewerWidth  = 60
	viewerHeight = 24
	// viewerPoints keeps rebuilds fast enough to follow key repeat.
	viewerPoints = 60
	maxMultipole = 8
	betaStep     = 0.05
	rotateStep   = 0.1
)

var (
	viewerCanvasStyle = lipgloss.NewStyle().Padding(1, 2)
	viewerStatsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(34)
	viewerLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	viewerValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	viewerErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	viewerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Viewer is an interactive Bubble Tea model that rotates and reshapes a
// deformed nuclear surface.
type Viewer struct {
	params     physics.ShapeParams
	initial    physics.ShapeParams
	mesh       *Mesh
	camera     *Camera
	canvas     *Canvas
	theme      Theme
	color      bool
	autoRotate bool
	err        error
}

// NewViewer builds a viewer for params. The grid is coarsened for
// interactive use.
func NewViewer(params physics.ShapeParams, theme Theme, color bool) (Viewer, error) {
	if params.Points > viewerPoints || params.Points < 2 {
		params.Points = viewerPoints
	}
	v := Viewer{
		params:  params,
		initial: params,
		camera:  NewCamera(),
		canvas:  NewCanvas(viewerWidth, viewerHeight),
		theme:   theme,
		color:   color,
	}
	if err := v.rebuild(); err != nil {
		return Viewer{}, err
	}
	v.camera.Fit(v.mesh.Radius)
	return v, nil
}

func (v Viewer) Init() tea.Cmd { return tick() }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		w := msg.Width - 40
		h := msg.Height - 4
		if w >= 20 && h >= 8 {
			v.canvas = NewCanvas(w, h)
		}
	case TickMsg:
		if v.autoRotate {
			v.camera.RotateAzimuth(rotateStep / 3)
		}
		return v, tick()
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "left":
		v.camera.RotateAzimuth(-rotateStep)
	case "right":
		v.camera.RotateAzimuth(rotateStep)
	case "up":
		v.camera.RotateElevation(rotateStep)
	case "down":
		v.camera.RotateElevation(-rotateStep)
	case "+", "=":
		v.camera.ZoomIn()
	case "-", "_":
		v.camera.ZoomOut()
	case "[":
		v.adjust("beta", v.params.Beta-betaStep)
	case "]":
		v.adjust("beta", v.params.Beta+betaStep)
	case ",":
		v.setMultipole(v.params.L-1, v.params.M)
	case ".":
		v.setMultipole(v.params.L+1, v.params.M)
	case "m":
		v.setMultipole(v.params.L, v.params.M-1)
	case "M":
		v.setMultipole(v.params.L, v.params.M+1)
	case " ":
		v.autoRotate = !v.autoRotate
	case "t":
		v.theme = nextTheme(v.theme)
	case "r":
		v.params = v.initial
		v.camera = NewCamera()
		v.err = v.rebuild()
		if v.err == nil {
			v.camera.Fit(v.mesh.Radius)
		}
	}
	return v, nil
}

// setMultipole clamps l to [0, maxMultipole] and m to [-l, l].
func (v *Viewer) setMultipole(l, m int) {
	l = max(0, min(maxMultipole, l))
	m = max(-l, min(l, m))
	if l == v.params.L && m == v.params.M {
		return
	}
	prev := v.params
	v.params.L, v.params.M = l, m
	if v.err = v.rebuild(); v.err != nil {
		v.params = prev
	}
}

func (v *Viewer) adjust(name string, value float64) {
	prev := v.params
	if v.err = v.params.SetParam(name, value); v.err != nil {
		return
	}
	if v.err = v.rebuild(); v.err != nil {
		v.params = prev
	}
}

// rebuild recomputes the mesh; the previous mesh stays on failure.
func (v *Viewer) rebuild() error {
	s, err := physics.NewSurface(v.params)
	if err != nil {
		return err
	}
	v.mesh = NewMesh(s, 2)
	return nil
}

func (v Viewer) View() string {
	v.canvas.Clear()
	RenderMesh(v.canvas, v.mesh, v.camera)
	var art string
	if v.color {
		art = v.canvas.Render(v.theme.Colormap)
	} else {
		art = v.canvas.String()
	}

	header := lipgloss.NewStyle().Foreground(v.theme.Primary).Bold(true).MarginBottom(1)
	var s strings.Builder
	s.WriteString(header.Render(strings.ToUpper(v.params.FileStem())) + "\n")
	row := func(label, value string) {
		s.WriteString(viewerLabelStyle.Render(label) + viewerValueStyle.Render(value) + "\n")
	}
	row("l", fmt.Sprintf("%d (%s)", v.params.L, physics.MultipoleName(v.params.L)))
	row("m", fmt.Sprintf("%d", v.params.M))
	row("beta", fmt.Sprintf("%.2f", v.params.Beta))
	row("R0", fmt.Sprintf("%.2f", v.params.R0))
	row("azimuth", fmt.Sprintf("%.0f°", v.camera.Azimuth*180/math.Pi))
	row("elevation", fmt.Sprintf("%.0f°", v.camera.Elevation*180/math.Pi))
	row("zoom", fmt.Sprintf("%.2fx", v.camera.Zoom))
	row("colormap", v.theme.Colormap.Name)
	if v.autoRotate {
		row("rotation", "auto")
	}
	if v.err != nil {
		s.WriteString("\n" + viewerErrorStyle.Render(v.err.Error()) + "\n")
	}
	s.WriteString(viewerHelpStyle.Render("─────────────────────\n←→↑↓:Rotate  +/-:Zoom\n[ ]:Beta  , .:l  m M:m\nSP:Spin T:Theme R:Reset\nQ:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, viewerCanvasStyle.Render(art), viewerStatsStyle.Render(s.String()))
}

// RunViewer opens the viewer in the alternate screen until the user quits.
func RunViewer(params physics.ShapeParams, theme Theme, color bool) error {
	v, err := NewViewer(params, theme, color)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}
