package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	subtitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(46)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	dimStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimmerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	accentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	keyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)
