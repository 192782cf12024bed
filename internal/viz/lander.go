package viz

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/san-kum/orbitlander/internal/config"
	"github.com/san-kum/orbitlander/internal/control"
	"github.com/san-kum/orbitlander/internal/dynamo"
	"github.com/san-kum/orbitlander/internal/physics"
	"github.com/san-kum/orbitlander/internal/round"
)

const (
	canvasCols      = 96
	canvasRows      = 27
	frameRate       = 60
	maxFrameDt      = 0.05
	holdWindow      = 150 * time.Millisecond
	helpDuration    = 5.0
	crashFlash      = 1.5
	historyCapacity = 300
)

// TickMsg is a frame from the tick chain of the model with generation Gen.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// generations numbers models so a model ignores ticks scheduled by one it
// replaced.
var generations atomic.Uint64

func tick(gen uint64) tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg{At: t, Gen: gen} })
}

type Options struct {
	Width, Height float64
	Projection    config.ProjectionConfig
	Theme         string
	Logger        zerolog.Logger
}

// Model plays one level. Terminals report key presses but not releases,
// so a rotation key counts as held for holdWindow after each press; key
// repeat keeps it held.
//
// The round runs on a game clock that advances by the clamped frame dt,
// so a stalled frame delays the orbiting bodies as much as the craft.
type Model struct {
	gen   uint64
	game  *round.ManualClock
	round *round.Round
	input *control.Manual
	opts  Options
	theme Theme
	st    styles

	canvas *Canvas

	now        time.Time
	leftUntil  time.Time
	rightUntil time.Time
	fps        float64

	showHUD   bool
	showPath  bool
	showHelp  bool
	won       bool
	winTime   float64
	crashedAt float64
	crashes   int
	done      bool

	speedHistory []float64
}

func NewModel(level dynamo.Level, opts Options) Model {
	theme := GetTheme(opts.Theme)
	game := round.NewManualClock()
	return Model{
		gen:          generations.Add(1),
		game:         game,
		round:        round.New(level, round.WithClock(game), round.WithLogger(opts.Logger)),
		input:        control.NewManual(),
		opts:         opts,
		theme:        theme,
		st:           newStyles(theme),
		canvas:       NewCanvas(canvasCols, canvasRows),
		showHUD:      true,
		showPath:     true,
		crashedAt:    math.Inf(-1),
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tick(m.gen)
}

// Done reports that the player asked to leave the level.
func (m Model) Done() bool { return m.done }

func (m Model) Won() bool           { return m.won }
func (m Model) Round() *round.Round { return m.round }
func (m Model) Craft() dynamo.Craft { return m.round.Craft() }
func (m Model) Collisions() int     { return m.crashes }
func (m Model) ShowHUD() bool       { return m.showHUD }
func (m Model) ShowPath() bool      { return m.showPath }
func (m Model) ThemeName() string   { return m.theme.Name }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.done = true
		case "enter":
			if m.won {
				m.done = true
			}
		case "a", "A", "left":
			m.leftUntil = m.now.Add(holdWindow)
		case "d", "D", "right":
			m.rightUntil = m.now.Add(holdWindow)
		case "z", "Z":
			m.input.PressEngine(true)
		case "x", "X":
			m.input.PressEngine(false)
		case "h", "H":
			m.showHUD = !m.showHUD
		case "p", "P":
			m.showPath = !m.showPath
		case "r", "R":
			m.restart()
		case "t", "T":
			m.theme = NextTheme(m.theme)
			m.st = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		now := msg.At
		dt := 0.0
		if !m.now.IsZero() {
			dt = now.Sub(m.now).Seconds()
		}
		m.now = now
		if dt > 0 {
			m.fps = 0.9*m.fps + 0.1/dt
		}
		if dt > maxFrameDt {
			dt = maxFrameDt
		}
		if dt > 0 && !m.won {
			m.step(dt)
		}
		return m, tick(m.gen)
	}
	return m, nil
}

// step feeds held input to the craft and advances the round by dt.
func (m *Model) step(dt float64) {
	left := !m.leftUntil.IsZero() && !m.now.After(m.leftUntil)
	right := !m.rightUntil.IsZero() && !m.now.After(m.rightUntil)
	m.input.SetRotation(left, right)

	cmd := m.input.Command(m.round.Craft(), m.round.Elapsed())
	control.Apply(m.round.Controls(), cmd, dt)

	m.game.AdvanceSeconds(dt)
	switch m.round.Tick(dt) {
	case round.Collision:
		m.crashes++
		m.crashedAt = m.round.Elapsed()
		m.speedHistory = m.speedHistory[:0]
	case round.Win:
		m.won = true
		m.winTime = m.round.Elapsed()
	}

	m.speedHistory = append(m.speedHistory, m.round.Craft().Speed())
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
}

func (m *Model) restart() {
	m.round.Restart()
	m.input = control.NewManual()
	m.leftUntil, m.rightUntil = time.Time{}, time.Time{}
	m.won = false
	m.winTime = 0
	m.crashes = 0
	m.crashedAt = math.Inf(-1)
	m.speedHistory = m.speedHistory[:0]
}

// toCanvas maps playfield coordinates to canvas dots.
func (m *Model) toCanvas(x, y float64) (int, int) {
	sx := float64(m.canvas.SubWidth()) / m.opts.Width
	sy := float64(m.canvas.SubHeight()) / m.opts.Height
	return int(math.Round(x * sx)), int(math.Round(y * sy))
}

func (m *Model) scaleRadius(r float64) int {
	s := math.Min(float64(m.canvas.SubWidth())/m.opts.Width, float64(m.canvas.SubHeight())/m.opts.Height)
	return int(math.Max(1, math.Round(r*s)))
}

func (m *Model) draw() {
	m.canvas.Clear()
	craft := m.round.Craft()
	elapsed := m.round.Elapsed()

	if w := m.round.Level().Win; w != nil {
		x, y, r := w.Target()
		cx, cy := m.toCanvas(x, y)
		m.canvas.Pen(InkTarget)
		m.canvas.DrawCircle(cx, cy, m.scaleRadius(r))
	}

	if m.showPath && !m.won {
		path := physics.Project(craft, m.round.Level().Bodies, m.opts.Projection.Horizon, m.opts.Projection.Steps, elapsed)
		m.canvas.Pen(InkPath)
		for _, p := range physics.Sample(path, m.opts.Projection.Stride) {
			m.canvas.Set(m.toCanvas(p.X, p.Y))
		}
	}

	m.canvas.Pen(InkBody)
	for _, b := range m.round.CurrentBodies() {
		cx, cy := m.toCanvas(b.X, b.Y)
		m.canvas.FillCircle(cx, cy, m.scaleRadius(b.Radius))
	}

	px, py := m.toCanvas(craft.X, craft.Y)
	rad := craft.Orientation * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)

	m.canvas.Pen(InkCraft)
	m.canvas.FillCircle(px, py, 1)
	m.canvas.DrawLine(px, py, px+int(math.Round(dx*4)), py+int(math.Round(dy*4)))

	if craft.EngineOn && craft.Fuel > 0 {
		m.canvas.Pen(InkFlame)
		m.canvas.DrawLine(px-int(math.Round(dx*2)), py-int(math.Round(dy*2)), px-int(math.Round(dx*4)), py-int(math.Round(dy*4)))
	}
}

func (m Model) View() string {
	m.draw()
	craft := m.round.Craft()
	level := m.round.Level()
	elapsed := m.round.Elapsed()

	var top string
	switch {
	case m.won:
		top = m.st.banner.Render(fmt.Sprintf("LANDED in %.1fs   enter: level select   r: retry", m.winTime))
	case elapsed-m.crashedAt < crashFlash:
		top = m.st.err.Render(fmt.Sprintf("CRASHED (%d)   craft reset", m.crashes))
	case elapsed < helpDuration && level.Win != nil:
		top = m.st.value.Render(level.Win.Description())
	default:
		top = m.st.muted.Render(level.Name)
	}

	canvasView := m.st.canvas.Render(strings.TrimRight(m.canvas.Render(m.theme.palette()), "\n"))
	main := canvasView
	if m.showHUD {
		main = lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.st.panel.Render(m.hud(craft, elapsed)))
	}

	footer := m.st.keyHints("a/d", "rotate", "z/x", "engine", "h", "hud", "p", "path", "r", "retry", "esc", "menu", "?", "help")

	view := lipgloss.JoinVertical(lipgloss.Left, top, main, footer)
	if m.showHelp {
		return controlsHelp(m.st) + "\n\n" + view
	}
	return view
}

func (m Model) hud(craft dynamo.Craft, elapsed float64) string {
	var s strings.Builder
	level := m.round.Level()

	s.WriteString(m.st.title.Render(strings.ToUpper(level.Name)) + "\n")

	row := func(label, value string) {
		s.WriteString(m.st.label.Render(label) + m.st.value.Render(value) + "\n")
	}

	row("Time", fmt.Sprintf("%.1fs", elapsed))
	row("Speed", fmt.Sprintf("%.0f px/s", craft.Speed()))
	if dist, ok := physics.ClosestSurfaceDistance(craft, m.round.CurrentBodies()); ok {
		row("Dist", fmt.Sprintf("%.0f px", dist))
	}
	row("Heading", fmt.Sprintf("%.0f°", craft.Orientation))
	row("Accel", fmt.Sprintf("%.1f px/s²", physics.EngineAccel(craft)))

	fuelFrac := 0.0
	if initial := level.InitialCraft.Fuel; initial > 0 {
		fuelFrac = craft.Fuel / initial
	}
	s.WriteString(m.st.label.Render("Fuel") + m.st.ProgressBar(fuelFrac, 16) + m.st.value.Render(fmt.Sprintf(" %.1fs", craft.Fuel)) + "\n")

	engine := m.st.muted.Render("OFF")
	if craft.EngineOn {
		engine = m.st.warning.Render("ON")
	}
	s.WriteString(m.st.label.Render("Engine") + engine + "\n")

	row("Crashes", fmt.Sprintf("%d", m.crashes))
	row("FPS", fmt.Sprintf("%.0f", m.fps))

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("speed px/s"))
		s.WriteString(m.st.graph.Render(chart) + "\n")
	}

	if level.Win != nil {
		s.WriteString(m.st.Separator(36) + "\n")
		s.WriteString(m.st.muted.Render(level.Win.Description()))
	}
	return s.String()
}

func controlsHelp(st styles) string {
	controls := [][2]string{
		{"A / D", "Rotate left / right"},
		{"Z", "Engine on"},
		{"X", "Engine off"},
		{"H", "Toggle HUD"},
		{"P", "Toggle trajectory path"},
		{"R", "Restart level"},
		{"T", "Cycle themes"},
		{"Esc", "Back to menu"},
		{"Q", "Quit"},
	}
	var b strings.Builder
	b.WriteString(st.title.Render("CONTROLS") + "\n")
	for _, c := range controls {
		b.WriteString(fmt.Sprintf("  %s %s\n", st.key.Render(fmt.Sprintf("%-8s", c[0])), st.muted.Render(c[1])))
	}
	return b.String()
}
