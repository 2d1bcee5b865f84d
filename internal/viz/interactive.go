package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/quad"
)

const (
	stateMenu = iota
	stateConfig
	stateLive
)

type app struct {
	state        int
	cursor       int
	registry     *lab.Registry
	studies      []string
	descriptions map[string]string
	selected     lab.Study
	cfg          lab.Config
	rule         quad.Rule
	specs        []lab.ParamSpec
	paramCursor  int
	editing      bool
	editBuf      string
	live         Model
}

// NewApp builds the menu -> parameters -> live view state machine.
func NewApp(registry *lab.Registry, cfg lab.Config, rule quad.Rule) *app {
	names := registry.ListStudies()
	descriptions := make(map[string]string, len(names))
	for _, name := range names {
		if s, err := registry.GetStudy(name); err == nil {
			descriptions[name] = s.Describe()
		}
	}
	if rule == nil {
		rule = quad.NewSimpson()
	}
	return &app{
		state:        stateMenu,
		registry:     registry,
		studies:      names,
		descriptions: descriptions,
		cfg:          cfg,
		rule:         rule,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	default:
		if a.state == stateLive {
			newLive, cmd := a.live.Update(msg)
			a.live = newLive.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateLive:
		if msg.String() == "esc" {
			a.state = stateConfig
			a.cfg = a.live.cfg
			return a, nil
		}
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.studies)-1 {
			a.cursor++
		}
	case "enter", " ":
		study, err := a.registry.GetStudy(a.studies[a.cursor])
		if err != nil {
			return a, nil
		}
		a.selected = study
		a.specs = study.Params()
		a.state, a.paramCursor = stateConfig, 0
	}
	return a, nil
}

func (a app) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			if val, err := strconv.ParseFloat(a.editBuf, 64); err == nil {
				a.cfg.SetParam(a.specs[a.paramCursor], val)
			}
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}
	switch msg.String() {
	case "q", "esc":
		a.state = stateMenu
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.specs)-1 {
			a.paramCursor++
		}
	case "enter", " ":
		if len(a.specs) > 0 {
			a.editing = true
			a.editBuf = fmt.Sprintf("%.2f", a.cfg.Param(a.specs[a.paramCursor].Name))
		}
	case "left", "h":
		a.nudge(0.95)
	case "right", "l":
		a.nudge(1.05)
	case "s":
		a.live = NewModel(a.selected, a.cfg, a.rule)
		a.state = stateLive
		return a, a.live.Init()
	}
	return a, nil
}

func (a *app) nudge(factor float64) {
	if len(a.specs) == 0 {
		return
	}
	spec := a.specs[a.paramCursor]
	val := a.cfg.Param(spec.Name)
	if val == 0 {
		val = spec.Min
	}
	a.cfg.SetParam(spec, val*factor)
}

func (a app) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateLive:
		return a.live.View()
	}
	return ""
}

func (a app) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("THERMOLAB") + "\n    " +
		subtitleStyle.Render("calculus of heat, one chart at a time") + "\n    " +
		subtitleStyle.Render("─────────────────────────") + "\n\n")
	for i, name := range a.studies {
		desc := a.descriptions[name]
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				cursorStyle.Render("▸"),
				selectedStyle.Render(fmt.Sprintf("%-12s", name)),
				accentStyle.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n",
				dimStyle.Render(fmt.Sprintf("  %-12s", name)),
				dimmerStyle.Render(desc)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" navigate  ") +
		keyStyle.Render("enter") + dimStyle.Render(" select  ") +
		keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

func (a app) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render(strings.ToUpper(a.selected.Name())) + "\n    " +
		subtitleStyle.Render(a.selected.Describe()) + "\n    " +
		subtitleStyle.Render("─────────────────────────") + "\n\n")
	for i, spec := range a.specs {
		valStr := fmt.Sprintf("%10.3f", a.cfg.Param(spec.Name))
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%10s", a.editBuf+"_")
		}
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorStyle.Render("▸"),
				selectedStyle.Render(fmt.Sprintf("%-12s", spec.Name)),
				accentStyle.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				dimStyle.Render(fmt.Sprintf("  %-12s", spec.Name)),
				dimmerStyle.Render(valStr)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + dimStyle.Render(" select  ") +
		keyStyle.Render("h/l") + dimStyle.Render(" adjust  ") +
		keyStyle.Render("enter") + dimStyle.Render(" edit  ") +
		keyStyle.Render("s") + dimStyle.Render(" start  ") +
		keyStyle.Render("esc") + dimStyle.Render(" back") + "\n")
	return b.String()
}

// RunInteractive launches the full-screen TUI.
func RunInteractive(registry *lab.Registry, cfg lab.Config, rule quad.Rule) error {
	_, err := tea.NewProgram(NewApp(registry, cfg, rule), tea.WithAltScreen()).Run()
	return err
}
