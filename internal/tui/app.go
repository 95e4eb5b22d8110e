// Package tui is the terminal frontend. The mouse drives the drag gesture
// directly; a pinch has no terminal equivalent, so `t` toggles a synthetic
// second contact and the wheel moves it, which exercises the same tuning
// machine as two fingers would.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/25Neil25/pulsegrid/internal/config"
	"github.com/25Neil25/pulsegrid/internal/engine"
	"github.com/25Neil25/pulsegrid/internal/geom"
	"github.com/25Neil25/pulsegrid/internal/gesture"
)

const (
	gridLeft  = 2 // columns of padding before the grid
	gridTop   = 2 // header rows above the grid
	cellCols  = 2 // terminal columns per tile
	histCap   = 120
	maxTickMs = 100.0 // clamp for stalled terminal frames

	defaultPinchDist = 120.0
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(11)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tuningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	restStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	shapeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

type Model struct {
	cfg *config.Config
	eng *engine.Engine

	bounds  geom.Rect
	pending []gesture.Event
	last    time.Time

	mouseDown bool
	lastMouse geom.Point
	pinch     bool
	pinchDist float64

	holdHist []float64
}

func NewModel(cfg *config.Config) Model {
	bounds := geom.R(0, 0, float64(cfg.WindowW), float64(cfg.WindowH))
	return Model{
		cfg:       cfg,
		eng:       engine.New(cfg, bounds),
		bounds:    bounds,
		last:      time.Now(),
		pinchDist: defaultPinchDist,
		lastMouse: geom.Mid(bounds.Min, bounds.Max),
		holdHist:  make([]float64, 0, histCap),
	}
}

// Run starts the bubbletea program and blocks until quit.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
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
		case "t":
			m.pinch = !m.pinch
			m.pinchDist = defaultPinchDist
			if m.pinch {
				m.pending = append(m.pending, gesture.DownAt(m.pinchContacts()...))
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case TickMsg:
		now := time.Time(msg)
		dtMs := now.Sub(m.last).Seconds() * 1000
		m.last = now
		if dtMs > maxTickMs {
			dtMs = maxTickMs
		}

		m.eng.Tick(dtMs, m.pending)
		m.pending = m.pending[:0]

		m.holdHist = append(m.holdHist, m.eng.Knob().HoldMs)
		if len(m.holdHist) > histCap {
			m.holdHist = m.holdHist[1:]
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := m.cellToSim(msg.X, msg.Y)
	m.lastMouse = pos

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.pinch {
			m.pinchDist += 8
			m.pending = append(m.pending, gesture.MoveTo(m.pinchContacts()...))
		}
		return
	case tea.MouseButtonWheelDown:
		if m.pinch {
			if m.pinchDist -= 8; m.pinchDist < 10 {
				m.pinchDist = 10
			}
			m.pending = append(m.pending, gesture.MoveTo(m.pinchContacts()...))
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.mouseDown = true
			m.pending = append(m.pending, gesture.DownAt(m.contacts()...))
		}
	case tea.MouseActionMotion:
		if m.mouseDown || m.pinch {
			m.pending = append(m.pending, gesture.MoveTo(m.contacts()...))
		}
	case tea.MouseActionRelease:
		m.mouseDown = false
		if !m.pinch {
			m.pending = append(m.pending, gesture.Lift())
		}
	}
}

// contacts builds the current contact set: the mouse, plus the synthetic
// pinch partner while tuning practice mode is on.
func (m *Model) contacts() []geom.Point {
	if m.pinch {
		return m.pinchContacts()
	}
	return []geom.Point{m.lastMouse}
}

func (m *Model) pinchContacts() []geom.Point {
	return []geom.Point{m.lastMouse, m.lastMouse.Add(geom.Pt(m.pinchDist, 0))}
}

// cellToSim maps a terminal cell to the engine's pixel space.
func (m *Model) cellToSim(x, y int) geom.Point {
	col := float64(x-gridLeft) / cellCols
	row := float64(y - gridTop)
	return geom.Pt(
		geom.Clamp((col+0.5)*m.bounds.W()/float64(m.cfg.Cols), 0, m.bounds.W()),
		geom.Clamp((row+0.5)*m.bounds.H()/float64(m.cfg.Rows), 0, m.bounds.H()),
	)
}

var stageGlyphs = [3][2]string{
	{"■", "●"}, // square→circle
	{"●", "▲"}, // circle→triangle
	{"▲", "■"}, // triangle→square
}

func (m Model) View() string {
	var grid strings.Builder
	for row := 0; row < m.eng.Rows(); row++ {
		grid.WriteString(strings.Repeat(" ", gridLeft))
		for col := 0; col < m.eng.Cols(); col++ {
			fr := m.eng.TileFrame(row, col)
			if fr.Resting {
				grid.WriteString(restStyle.Render("·") + " ")
				continue
			}
			half := 0
			if fr.K >= 0.5 {
				half = 1
			}
			grid.WriteString(shapeStyle.Render(stageGlyphs[fr.Stage][half]) + " ")
		}
		grid.WriteString("\n")
	}

	gridView := grid.String()
	header := headerStyle.Render("pulsegrid") + "\n\n"
	body := lipgloss.JoinHorizontal(lipgloss.Top, gridView, m.statsView())

	help := "\n" + helpStyle.Render("drag: emit waves  ·  t: tuning mode  ·  wheel: adjust hold  ·  q: quit")
	return header + body + help
}

func (m Model) statsView() string {
	knob := m.eng.Knob()

	line := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(line("time", fmt.Sprintf("%.1fs", m.eng.NowMs()/1000)))
	b.WriteString(line("animating", fmt.Sprintf("%d", m.eng.AnimatingCount())))
	b.WriteString(line("emitters", fmt.Sprintf("%d", len(m.eng.Emitters()))))
	b.WriteString(line("hold", fmt.Sprintf("%.0f ms  [%.0f-%.0f]", knob.HoldMs, knob.HoldMin, knob.HoldMax)))
	b.WriteString(line("cycle", fmt.Sprintf("%.0f ms", m.eng.Timing().CycleMs())))

	if knob.Active {
		b.WriteString(tuningStyle.Render("TUNING (frozen)") + "\n")
	} else {
		b.WriteString(valueStyle.Render("playing") + "\n")
	}

	if len(m.holdHist) > 1 {
		b.WriteString("\n" + graphStyle.Render(asciigraph.Plot(m.holdHist,
			asciigraph.Height(4),
			asciigraph.Width(28),
		)))
	}
	return statsStyle.Render(b.String())
}
