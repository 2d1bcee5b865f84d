package viz

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/thermolab/internal/lab"
	"github.com/san-kum/thermolab/internal/quad"
)

func testConfig() lab.Config {
	return lab.Config{
		Points:      200,
		Temperature: 300,
		MassU:       28,
		Particles:   1,
		Emissivity:  0.95,
		Area:        1.0,
		TempLow:     200,
		TempHigh:    1500,
		CutoffKT:    3.0,
	}
}

func press(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func typeString(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestInteractiveStartUsesConfiguredRule(t *testing.T) {
	rule := quad.NewAdaptiveSimpson()
	m := tea.Model(*NewApp(lab.NewRegistry(), testConfig(), rule))

	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}},
	)

	a := m.(app)
	if a.state != stateLive {
		t.Fatalf("expected live state after start, got %d", a.state)
	}
	if got := a.live.rule.Name(); got != rule.Name() {
		t.Errorf("live view uses rule %q, want %q", got, rule.Name())
	}
}

func TestInteractiveNilRuleFallsBack(t *testing.T) {
	a := NewApp(lab.NewRegistry(), testConfig(), nil)
	if a.rule == nil {
		t.Fatal("expected a default rule when none is given")
	}
}

func TestInteractiveEditRejectsMalformedInput(t *testing.T) {
	m := tea.Model(*NewApp(lab.NewRegistry(), testConfig(), quad.NewSimpson()))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	a := m.(app)
	spec := a.specs[0]
	before := a.cfg.Param(spec.Name)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.(app).editing {
		t.Fatal("expected edit mode after enter on a parameter")
	}

	// clear the pre-filled buffer, then commit garbage
	for i := 0; i < 12; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeString(t, m, "1.2.3")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	a = m.(app)
	if a.editing {
		t.Error("expected edit mode to end on enter")
	}
	if got := a.cfg.Param(spec.Name); got != before {
		t.Errorf("malformed input changed %s from %g to %g", spec.Name, before, got)
	}
}
