package thermo_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermolab/internal/thermo"
)

var _ = Describe("BoltzmannEnergy", func() {
	var dist *thermo.BoltzmannEnergy

	BeforeEach(func() {
		dist = thermo.NewBoltzmannEnergy(300)
	})

	It("vanishes at and below zero energy", func() {
		Expect(dist.Density(0)).To(BeZero())
		Expect(dist.Density(-1e-21)).To(BeZero())
	})

	It("peaks at kT/2", func() {
		mode := dist.Mode()
		Expect(mode).To(BeNumerically("~", 0.5*thermo.KT(300), 1e-30))

		// The density at the mode dominates nearby samples.
		h := mode * 1e-3
		Expect(dist.Density(mode)).To(BeNumerically(">", dist.Density(mode-h)))
		Expect(dist.Density(mode)).To(BeNumerically(">", dist.Density(mode+h)))
	})

	It("has mean 3kT/2", func() {
		Expect(dist.Mean()).To(BeNumerically("~", 1.5*thermo.KT(300), 1e-30))
	})

	It("matches the closed form at the mode", func() {
		kt := thermo.KT(300)
		mode := 0.5 * kt
		want := 2 / math.Sqrt(math.Pi) * math.Pow(kt, -1.5) * math.Sqrt(mode) * math.Exp(-0.5)
		Expect(dist.Density(mode)).To(BeNumerically("~", want, want*1e-12))
	})

	It("stays finite across its support", func() {
		lo, hi := dist.Support()
		Expect(lo).To(BeZero())
		for _, frac := range []float64{1e-6, 0.01, 0.25, 0.5, 0.99, 1} {
			e := lo + frac*(hi-lo)
			Expect(thermo.IsFinite(dist.Density(e))).To(BeTrue())
		}
	})

	Describe("parameter tuning", func() {
		It("accepts a positive temperature", func() {
			Expect(dist.SetParam("temperature", 500)).To(Succeed())
			Expect(dist.GetParams()["temperature"]).To(Equal(500.0))
		})

		It("rejects non-positive temperatures", func() {
			err := dist.SetParam("temperature", -10)
			Expect(err).To(MatchError(thermo.ErrParameterBounds))
		})

		It("rejects unknown parameters", func() {
			err := dist.SetParam("pressure", 1)
			Expect(err).To(MatchError(thermo.ErrUnknownParameter))
		})
	})
})

var _ = Describe("MaxwellSpeed", func() {
	var dist *thermo.MaxwellSpeed

	BeforeEach(func() {
		// N2 at room temperature
		dist = thermo.NewMaxwellSpeed(300, 28*thermo.AtomicMass)
	})

	It("has the most probable speed sqrt(2kT/m)", func() {
		want := math.Sqrt(2 * thermo.KT(300) / (28 * thermo.AtomicMass))
		Expect(dist.Mode()).To(BeNumerically("~", want, want*1e-12))
		// about 422 m/s for nitrogen
		Expect(dist.Mode()).To(BeNumerically("~", 422, 1))
	})

	It("has mean speed sqrt(8kT/(pi m))", func() {
		want := math.Sqrt(8 * thermo.KT(300) / (math.Pi * 28 * thermo.AtomicMass))
		Expect(dist.Mean()).To(BeNumerically("~", want, want*1e-12))
		Expect(dist.Mean()).To(BeNumerically(">", dist.Mode()))
	})

	It("vanishes for negative speeds", func() {
		Expect(dist.Density(-1)).To(BeZero())
	})

	It("exposes mass in atomic units", func() {
		Expect(dist.GetParams()["mass_u"]).To(BeNumerically("~", 28, 1e-9))
		Expect(dist.SetParam("mass_u", 4)).To(Succeed())
		Expect(dist.Mode()).To(BeNumerically(">", 1000)) // helium is fast
	})

	It("rejects non-positive mass", func() {
		Expect(dist.SetParam("mass_u", 0)).To(MatchError(thermo.ErrParameterBounds))
	})
})

var _ = Describe("EntropyModel", func() {
	var model *thermo.EntropyModel

	BeforeEach(func() {
		model = thermo.NewEntropyModel(1)
	})

	It("computes ln(Omega) = (3N/2) ln(E)", func() {
		e := 2e-21
		Expect(model.LogOmega(e)).To(BeNumerically("~", 1.5*math.Log(e), 1e-12))
	})

	It("scales entropy with particle count", func() {
		e := 2e-21
		s1 := model.Entropy(e)
		Expect(model.SetParam("particles", 10)).To(Succeed())
		Expect(model.Entropy(e)).To(BeNumerically("~", 10*s1, math.Abs(s1)*1e-9))
	})

	It("inverts temperature as T(E) = 2E/(3Nk)", func() {
		e := 3e-21
		want := 2 * e / (3 * thermo.Boltzmann)
		Expect(model.Temperature(e)).To(BeNumerically("~", want, want*1e-12))
	})

	It("returns -Inf log-count at zero energy", func() {
		Expect(math.IsInf(model.LogOmega(0), -1)).To(BeTrue())
	})
})

var _ = Describe("Radiator", func() {
	var r *thermo.Radiator

	BeforeEach(func() {
		r = thermo.NewRadiator(1.0, 1.0)
	})

	It("radiates sigma T^4 for a unit blackbody", func() {
		want := thermo.StefanBoltzmann * math.Pow(400, 4)
		Expect(r.Power(400)).To(BeNumerically("~", want, want*1e-12))
	})

	It("scales with emissivity and area", func() {
		full := r.Power(500)
		Expect(r.SetParam("emissivity", 0.5)).To(Succeed())
		Expect(r.SetParam("area", 2)).To(Succeed())
		Expect(r.Power(500)).To(BeNumerically("~", full, full*1e-12))
	})

	It("integrates power over a band in closed form", func() {
		got := r.RadiatedEnergyExact(200, 1500)
		want := thermo.StefanBoltzmann * (math.Pow(1500, 5) - math.Pow(200, 5)) / 5
		Expect(got).To(BeNumerically("~", want, want*1e-12))
	})

	It("swaps out-of-order bounds", func() {
		Expect(r.RadiatedEnergyExact(1500, 200)).To(Equal(r.RadiatedEnergyExact(200, 1500)))
	})

	It("rejects emissivity outside (0, 1]", func() {
		Expect(r.SetParam("emissivity", 0)).To(MatchError(thermo.ErrParameterBounds))
		Expect(r.SetParam("emissivity", 1.2)).To(MatchError(thermo.ErrParameterBounds))
		Expect(r.SetParam("emissivity", 1.0)).To(Succeed())
	})
})

var _ = Describe("Configurable models", func() {
	It("round-trip every advertised parameter", func() {
		models := []thermo.Configurable{
			thermo.NewBoltzmannEnergy(300),
			thermo.NewMaxwellSpeed(300, 28*thermo.AtomicMass),
			thermo.NewEntropyModel(1),
			thermo.NewRadiator(0.95, 1.0),
		}
		for _, m := range models {
			for name, value := range m.GetParams() {
				Expect(m.SetParam(name, value)).To(Succeed())
				Expect(m.GetParams()[name]).To(BeNumerically("~", value, math.Abs(value)*1e-12))
			}
		}
	})
})

var _ = Describe("Candidates", func() {
	It("offers the bare factor and the weighted form", func() {
		cands := thermo.Candidates()
		Expect(cands).To(HaveLen(2))
		Expect(cands[0].MeanKT).To(Equal(1.0))
		Expect(cands[1].MeanKT).To(Equal(1.5))
	})

	It("evaluates to zero for negative energies", func() {
		kt := thermo.KT(300)
		for _, c := range thermo.Candidates() {
			Expect(c.Eval(-kt, kt)).To(BeZero())
			Expect(c.Eval(kt, kt)).To(BeNumerically(">", 0))
		}
	})
})
