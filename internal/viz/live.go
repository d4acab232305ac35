// Package viz renders the simulation in the terminal: a braille-canvas
// 3D projection of the trajectory with a stats panel and an x(t)
// telemetry graph, driven by bubbletea at a fixed tick rate.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/lorenz"
	"github.com/san-kum/lorenzviz/internal/session"
)

const (
	canvasWidth  = 90
	canvasHeight = 28
	telemetryCap = 120
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(0, 1)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(38)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	divergedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0, 0, 2)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1).PaddingLeft(2)
)

type TickMsg time.Time

// Model holds the TUI state around one simulation session.
type Model struct {
	sess      *session.Session
	proj      *Projector
	canvas    *Canvas
	snapshot  []lorenz.State
	telemetry []float64
	diverged  bool

	paramKeys []string
	selected  int
	showHelp  bool
}

func NewModel(cfg *config.Config) (Model, error) {
	sess, err := session.New(cfg.Session())
	if err != nil {
		return Model{}, err
	}
	sess.Resume()
	return Model{
		sess:      sess,
		proj:      NewProjector(),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		telemetry: make([]float64, 0, telemetryCap),
		paramKeys: []string{"sigma", "rho", "beta", "dt"},
	}, nil
}

// Run starts the TUI and blocks until quit.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.diverged {
				m.sess.Toggle()
			}
		case "r":
			m.sess.Reset()
			m.telemetry = m.telemetry[:0]
			m.diverged = false
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "x":
			m.proj.RotateX(0.1)
		case "X":
			m.proj.RotateX(-0.1)
		case "y":
			m.proj.RotateY(0.1)
		case "Y":
			m.proj.RotateY(-0.1)
		case "+", "=":
			m.proj.ZoomIn()
		case "-", "_":
			m.proj.ZoomOut()
		case "c":
			m.proj.Reset()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if err := m.sess.Tick(); err != nil {
			m.diverged = true
		}
		if m.sess.Running() {
			m.telemetry = append(m.telemetry, m.sess.State().X)
			if len(m.telemetry) > telemetryCap {
				m.telemetry = m.telemetry[1:]
			}
		}
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(factor float64) {
	p := m.sess.Params()
	switch m.paramKeys[m.selected] {
	case "sigma":
		p.Sigma *= factor
		m.sess.SetParams(p)
	case "rho":
		p.Rho *= factor
		m.sess.SetParams(p)
	case "beta":
		p.Beta *= factor
		m.sess.SetParams(p)
	case "dt":
		m.sess.SetDt(m.sess.Dt() * factor)
	}
}

func (m *Model) paramValue(key string) float64 {
	p := m.sess.Params()
	switch key {
	case "sigma":
		return p.Sigma
	case "rho":
		return p.Rho
	case "beta":
		return p.Beta
	case "dt":
		return m.sess.Dt()
	}
	return 0
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.snapshot = m.sess.Snapshot(m.snapshot)

	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	var prevX, prevY int
	havePrev := false
	for _, s := range m.snapshot {
		x, y, ok := m.proj.Project(s, sw, sh)
		if !ok {
			havePrev = false
			continue
		}
		if havePrev {
			m.canvas.DrawLine(prevX, prevY, x, y)
		} else {
			m.canvas.Set(x, y)
		}
		prevX, prevY = x, y
		havePrev = true
	}
}

func (m Model) View() string {
	var stats strings.Builder
	stats.WriteString(headerStyle.Render("lorenzviz") + "\n")

	status := "RUNNING"
	if m.diverged {
		status = divergedStyle.Render("DIVERGED - press r")
	} else if !m.sess.Running() {
		status = "PAUSED"
	}
	stats.WriteString(labelStyle.Render("status") + valueStyle.Render(status) + "\n\n")

	for i, key := range m.paramKeys {
		style := valueStyle
		prefix := "  "
		if i == m.selected {
			style = activeParamStyle
			prefix = "> "
		}
		stats.WriteString(labelStyle.Render(prefix+key) + style.Render(fmt.Sprintf("%.4f", m.paramValue(key))) + "\n")
	}

	st := m.sess.State()
	stats.WriteString("\n")
	stats.WriteString(labelStyle.Render("state") + valueStyle.Render(fmt.Sprintf("%.2f %.2f %.2f", st.X, st.Y, st.Z)) + "\n")
	stats.WriteString(labelStyle.Render("points") + valueStyle.Render(fmt.Sprintf("%d", m.sess.Len())) + "\n")
	stats.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.1f", m.sess.Time())) + "\n")

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)

	out := main
	if len(m.telemetry) >= 2 {
		graph := asciigraph.Plot(m.telemetry, asciigraph.Height(6), asciigraph.Width(100), asciigraph.Caption("x(t)"))
		out += "\n" + graphStyle.Render(graph)
	}

	if m.showHelp {
		out += "\n" + helpStyle.Render("space pause  r reset  tab/↑↓ params  x/X y/Y rotate  +/- zoom  c camera  q quit")
	} else {
		out += "\n" + helpStyle.Render("? help  q quit")
	}
	return out
}
