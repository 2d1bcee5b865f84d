package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
)

// A walkthrough step: where the derivation of the Boltzmann
// distribution stands, which mathematical tool it uses, and an optional
// inline chart.
type step struct {
	title string
	body  []string
	tool  string
	chart func() string
}

func derivationSteps() []step {
	return []step{
		{
			title: "1 — PV = nRT: energy per molecule",
			body: []string{
				"Start from the ideal gas law, PV = nRT.",
				"With n = N/Nₐ and R = k·Nₐ this becomes PV = NkT,",
				"and dividing by N gives PV/N = kT.",
				"",
				"kT has the dimension of energy: it ties the macroscopic",
				"temperature to an energy scale per particle.",
			},
			tool: "algebra and dimensional analysis",
		},
		{
			title: "2 — Kinetic theory: pressure from motion",
			body: []string{
				"Kinetic theory gives P = (1/3) N m <v²> / V.",
				"Comparing with P = NkT/V:",
				"",
				"    (1/2) m <v²> = (3/2) kT",
				"",
				"The mean kinetic energy per particle is 3/2 kT.",
			},
			tool: "expectation values",
		},
		{
			title: "3 — The central question",
			body: []string{
				"Knowing the mean <E> = 3/2 kT says nothing about the",
				"spread. How are the individual energies distributed?",
				"",
				"We need a probability density f(E) describing that",
				"dispersion: the problem turns statistical.",
			},
			tool: "probabilistic formulation",
		},
		{
			title: "4 — Microstates and entropy",
			body: []string{
				"    S = k ln Ω",
				"",
				"The observed distribution is the one realized by the",
				"largest number of microstates Ω, i.e. maximal S, subject",
				"to fixed normalization and fixed mean energy.",
			},
			tool: "combinatorics and logarithms",
		},
		{
			title: "5 — Lagrange multipliers",
			body: []string{
				"Maximize ln Ω[f] under two constraints:",
				"",
				"    ∫ f d³v = 1",
				"    ∫ (1/2) m v² f d³v = (3/2) kT",
				"",
				"Setting the variation of L = ln Ω − α(∫f − 1) − β(∫E f − <E>)",
				"to zero yields f ∝ exp(−β·(1/2) m v²), with β = 1/kT.",
			},
			tool: "constrained optimization",
		},
		{
			title: "6 — The Boltzmann factor",
			body: []string{
				"In terms of energy, f(E) ∝ exp(−E/kT): states cost",
				"probability exponentially in their energy.",
			},
			tool: "identification of constants",
			chart: func() string {
				return plotCurve(func(x float64) float64 { return math.Exp(-x) }, 0, 5, "exp(-E/kT)")
			},
		},
		{
			title: "7 — The v² density of states",
			body: []string{
				"Passing from the 3D vector density f(v⃗) to the density",
				"of the speed modulus brings in the spherical volume",
				"element d³v = 4π v² dv.",
				"",
				"The 4π v² factor is the Jacobian: there are more ways",
				"to be fast than to be slow.",
			},
			tool: "change of variables",
			chart: func() string {
				return plotCurve(func(x float64) float64 { return x * x * math.Exp(-x*x) }, 0, 3, "v² exp(-v²)")
			},
		},
		{
			title: "8 — Normalization",
			body: []string{
				"Requiring ∫f(v)dv = 1 fixes the prefactor",
				"",
				"    A = 4π (m / 2πkT)^(3/2)",
				"",
				"via Gaussian integrals, ∫ xⁿ exp(−ax²) dx reducing to",
				"the gamma function.",
			},
			tool: "Gaussian integrals and Γ",
		},
		{
			title: "9 — The full energy distribution",
			body: []string{
				"Changing variable E = (1/2) m v² combines the Boltzmann",
				"factor with the density of states:",
				"",
				"    f(E) = (2/√π) (kT)^(-3/2) √E exp(−E/kT)",
				"",
				"Most probable energy kT/2; mean energy 3kT/2. The",
				"candidates study verifies both numerically.",
			},
			tool: "numeric verification",
			chart: func() string {
				return plotCurve(func(x float64) float64 { return math.Sqrt(x) * math.Exp(-x) }, 0, 8, "√E exp(-E/kT)")
			},
		},
	}
}

func plotCurve(f func(float64) float64, lo, hi float64, caption string) string {
	const n = 60
	data := make([]float64, n)
	for i := range data {
		data[i] = f(lo + (hi-lo)*float64(i)/float64(n-1))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(7),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}

// Walkthrough is a pager over the derivation steps.
type Walkthrough struct {
	steps []step
	pos   int
}

func NewWalkthrough() *Walkthrough {
	return &Walkthrough{steps: derivationSteps()}
}

func (w Walkthrough) Init() tea.Cmd { return nil }

func (w Walkthrough) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return w, tea.Quit
		case "right", "l", " ", "enter", "down", "j":
			if w.pos < len(w.steps)-1 {
				w.pos++
			}
		case "left", "h", "up", "k":
			if w.pos > 0 {
				w.pos--
			}
		case "g":
			w.pos = 0
		case "G":
			w.pos = len(w.steps) - 1
		}
	}
	return w, nil
}

func (w Walkthrough) View() string {
	s := w.steps[w.pos]
	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("DERIVING BOLTZMANN") + "\n")
	b.WriteString("  " + subtitleStyle.Render(fmt.Sprintf("step %d of %d", w.pos+1, len(w.steps))) + "\n\n")
	b.WriteString("  " + selectedStyle.Render(s.title) + "\n\n")
	for _, line := range s.body {
		b.WriteString("  " + valueStyle.Render(line) + "\n")
	}
	if s.chart != nil {
		b.WriteString("\n" + graphStyle.Render(s.chart()) + "\n")
	}
	b.WriteString("\n  " + subtitleStyle.Render("tool: "+s.tool) + "\n")
	b.WriteString("\n  " + keyStyle.Render("h/l") + dimStyle.Render(" prev/next  ") +
		keyStyle.Render("g/G") + dimStyle.Render(" first/last  ") +
		keyStyle.Render("q") + dimStyle.Render(" quit") + "\n")
	return b.String()
}

// RunWalkthrough launches the derivation pager.
func RunWalkthrough() error {
	_, err := tea.NewProgram(NewWalkthrough()).Run()
	return err
}
