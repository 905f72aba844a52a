package brakes_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/podforge/podmodel/internal/brakes"
	"github.com/podforge/podmodel/internal/component"
)

var _ = Describe("FrictionCoefficient", func() {
	var f *brakes.FrictionCoefficient

	BeforeEach(func() {
		f = brakes.NewFrictionCoefficient()
		f.SteadyStateMu = 0.38
		f.SpeedGain = 0.35
		f.SpeedDecay = 0.05
		f.TempGain = 0.25
		f.TempDecay = 0.01
		f.ReferenceTemp = 293.0
	})

	It("reduces to mu0*(1+n_v)*(1+n_t) at zero speed and reference temperature", func() {
		mu := f.Coefficient(0, f.ReferenceTemp)
		Expect(mu).To(BeNumerically("~", f.SteadyStateMu*(1+f.SpeedGain)*(1+f.TempGain), 1e-12))
	})

	It("decreases monotonically in speed for positive gain and decay", func() {
		prev := f.Coefficient(0, 293.0)
		for _, v := range []float64{5, 20, 60, 120, 300} {
			mu := f.Coefficient(v, 293.0)
			Expect(mu).To(BeNumerically("<", prev))
			prev = mu
		}
	})

	It("approaches the steady-state coefficient at high speed and temperature", func() {
		mu := f.Coefficient(1e4, 1e5)
		Expect(mu).To(BeNumerically("~", f.SteadyStateMu, 1e-6))
	})

	It("evaluates through the generic interface with named bindings", func() {
		out, err := f.Evaluate(component.Values{"surface_velocity": 0, "temperature": 293.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(out["friction_coefficient"]).To(BeNumerically("~", f.Coefficient(0, 293.0), 1e-12))
	})

	It("rejects evaluation with a missing input", func() {
		_, err := f.Evaluate(component.Values{"surface_velocity": 10})
		Expect(err).To(MatchError(component.ErrMissingInput))
	})

	It("declares the option names its tests use", func() {
		// The declared option names and the accessor keys must stay in
		// lockstep: a misspelled key on either side would make a
		// component unconfigurable through the catalog.
		declared := map[string]bool{}
		for _, p := range f.Options() {
			declared[p.Name] = true
		}
		for name := range f.GetOptions() {
			Expect(declared).To(HaveKey(name))
			Expect(f.SetOption(name, f.GetOptions()[name])).To(Succeed())
		}
		Expect(f.SetOption("paramtric_factor_tempertature", 1.0)).To(MatchError(component.ErrUnknownOption))
	})
})
