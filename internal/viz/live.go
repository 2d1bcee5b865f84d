package viz

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/quad"
)

const (
	chartWidth  = 70
	chartHeight = 12
)

// Model is the live study view: the current curves on the left, the
// tunable parameters and metrics on the right. Parameters adjust in 5%
// steps and the study recomputes immediately, which is what the
// original's sliders did.
type Model struct {
	study      lab.Study
	cfg        lab.Config
	initialCfg lab.Config
	rule       quad.Rule
	specs      []lab.ParamSpec
	selected   int
	result     *lab.Result
	err        error
	showHelp   bool
	width      int
}

func NewModel(study lab.Study, cfg lab.Config, rule quad.Rule) Model {
	m := Model{
		study:      study,
		cfg:        cfg,
		initialCfg: cfg,
		rule:       rule,
		specs:      study.Params(),
		width:      100,
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) recompute() {
	m.result, m.err = m.study.Run(context.Background(), m.cfg, m.rule)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if len(m.specs) > 0 {
				m.selected = (m.selected + 1) % len(m.specs)
			}
		case "up", "k":
			m.adjust(1.05)
		case "down", "j":
			m.adjust(0.95)
		case "r":
			m.cfg = m.initialCfg
			m.recompute()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) adjust(factor float64) {
	if len(m.specs) == 0 {
		return
	}
	spec := m.specs[m.selected]
	val := m.cfg.Param(spec.Name)
	if val == 0 {
		val = spec.Min
	}
	m.cfg.SetParam(spec, val*factor)
	m.recompute()
}

func (m Model) View() string {
	var charts strings.Builder
	charts.WriteString(headerStyle.Render(strings.ToUpper(m.study.Name())) + "\n")
	charts.WriteString(subtitleStyle.Render(m.study.Describe()) + "\n\n")

	if m.err != nil {
		charts.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else if m.result != nil {
		height := chartHeight
		if len(m.result.Series) > 1 {
			height = chartHeight / 2
		}
		for _, series := range m.result.Series {
			chart := asciigraph.Plot(series.Y,
				asciigraph.Height(height),
				asciigraph.Width(chartWidth),
				asciigraph.Caption(series.Label+"  vs  "+m.result.XLabel),
			)
			charts.WriteString(graphStyle.Render(chart) + "\n")
		}
	}

	var panel strings.Builder
	panel.WriteString("PARAMETERS\n")
	if len(m.specs) == 0 {
		panel.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	for i, spec := range m.specs {
		val := m.cfg.Param(spec.Name)
		bar := paramBar(val, spec)
		line := fmt.Sprintf("%-12s %s %10.3g", spec.Name, bar, val)
		if i == m.selected {
			panel.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			panel.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}

	if m.result != nil {
		panel.WriteString("\nMETRICS\n")
		names := make([]string, 0, len(m.result.Metrics))
		for name := range m.result.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			panel.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.6g", m.result.Metrics[name])) + "\n")
		}
	}

	panel.WriteString(helpStyle.Render("\n──────────────────────\nTab:Param ↑↓:Tune R:Reset\nQ:Quit ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, charts.String(), statsStyle.Render(panel.String()))
	if m.showHelp {
		return helpOverlay + "\n\n" + main
	}
	return main
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  R        - Reset parameters         ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// paramBar renders the parameter's position inside its slider range.
func paramBar(val float64, spec lab.ParamSpec) string {
	const barWidth = 10
	ratio := 0.0
	if spec.Max > spec.Min {
		ratio = (val - spec.Min) / (spec.Max - spec.Min)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * barWidth)
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// RunLive launches the live tuning view for one study.
func RunLive(study lab.Study, cfg lab.Config, rule quad.Rule) error {
	_, err := tea.NewProgram(NewModel(study, cfg, rule)).Run()
	return err
}
