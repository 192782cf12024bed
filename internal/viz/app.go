package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/orbitlander/internal/dynamo"
)

const (
	stateMenu = iota
	stateControls
	stateSim
)

// App is the level select menu wrapped around a Model.
type App struct {
	state  int
	cursor int
	levels []dynamo.Level
	opts   Options
	st     styles
	live   Model
}

func NewApp(levels []dynamo.Level, opts Options) App {
	return App{
		state:  stateMenu,
		levels: levels,
		opts:   opts,
		st:     newStyles(GetTheme(opts.Theme)),
	}
}

// NewAppAt skips the menu and starts the given level.
func NewAppAt(levels []dynamo.Level, index int, opts Options) App {
	a := NewApp(levels, opts)
	if index >= 0 && index < len(levels) {
		a.cursor = index
		a.live = NewModel(levels[index], opts)
		a.state = stateSim
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.state == stateSim {
		return a.live.Init()
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		if key, ok := msg.(tea.KeyMsg); ok {
			return a.menuKey(key)
		}
	case stateControls:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "esc", "enter":
				a.state = stateMenu
			}
		}
	case stateSim:
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		if a.live.Done() {
			a.state = stateMenu
			return a, nil
		}
		return a, cmd
	}
	return a, nil
}

// menu entries are the levels followed by Controls and Exit.
func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	entries := len(a.levels) + 2
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < entries-1 {
			a.cursor++
		}
	case "enter", " ":
		switch {
		case a.cursor < len(a.levels):
			a.live = NewModel(a.levels[a.cursor], a.opts)
			a.state = stateSim
			return a, a.live.Init()
		case a.cursor == len(a.levels):
			a.state = stateControls
		default:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) View() string {
	switch a.state {
	case stateControls:
		return "\n" + controlsHelp(a.st) + "\n" + a.st.keyHints("esc", "back")
	case stateSim:
		return a.live.View()
	}
	return a.viewMenu()
}

func (a App) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + a.st.title.Render("ORBIT LANDER") + "\n")
	b.WriteString("    " + a.st.muted.Render("gravity sling lander") + "\n")
	b.WriteString("    " + a.st.muted.Render("─────────────────────────") + "\n\n")

	line := func(i int, name, desc string) {
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", a.st.key.Render("▸"), a.st.value.Bold(true).Render(fmt.Sprintf("%-16s", name)), a.st.warning.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", a.st.muted.Render(fmt.Sprintf("%-16s", name)), a.st.muted.Render(desc)))
		}
	}

	for i, l := range a.levels {
		desc := ""
		if l.Win != nil {
			desc = l.Win.Description()
		}
		line(i, l.Name, desc)
	}
	line(len(a.levels), "Controls", "")
	line(len(a.levels)+1, "Exit", "")

	b.WriteString("\n    " + a.st.keyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

// Run starts the interactive program on the alternate screen.
func Run(app App) error {
	_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
