package brakes_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/podforge/podmodel/internal/brakes"
	"github.com/podforge/podmodel/internal/component"
)

var _ = Describe("HeatGeneration", func() {
	It("conserves total power across the split for any ratio in (0,1)", func() {
		h := brakes.NewHeatGeneration()
		for _, ratio := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
			h.PadRatio = ratio
			pad, track, err := h.Split(4200.0, 90.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(pad + track).To(BeNumerically("~", 4200.0*90.0, 1e-9))
			Expect(pad).To(BeNumerically("~", ratio*4200.0*90.0, 1e-9))
		}
	})

	It("rejects ratios outside (0,1)", func() {
		h := brakes.NewHeatGeneration()
		for _, ratio := range []float64{0.0, 1.0, -0.2, 1.7} {
			h.PadRatio = ratio
			_, _, err := h.Split(1.0, 1.0)
			Expect(err).To(MatchError(component.ErrRatioBounds))
		}
	})

	It("evaluates both outputs through the generic interface", func() {
		h := brakes.NewHeatGeneration()
		out, err := h.Evaluate(component.Values{"braking_force": 100.0, "surface_velocity": 30.0})
		Expect(err).NotTo(HaveOccurred())
		Expect(out["heat_rate_pad"]).To(BeNumerically("~", 1500.0, 1e-9))
		Expect(out["heat_rate_track"]).To(BeNumerically("~", 1500.0, 1e-9))
	})
})

var _ = Describe("HeatConduction", func() {
	var h *brakes.HeatConduction

	BeforeEach(func() {
		h = brakes.NewHeatConduction()
		h.ContactConductance = 1100.0
	})

	It("always loses heat while the pad runs hotter than the contact", func() {
		rate, err := h.Rate(650.0, 350.0, 0.012)
		Expect(err).NotTo(HaveOccurred())
		Expect(rate).To(BeNumerically("<", 0))
		Expect(rate).To(BeNumerically("~", -1100.0*300.0*0.012, 1e-9))
	})

	It("rejects a pad at or below the contact temperature", func() {
		_, err := h.Rate(350.0, 350.0, 0.012)
		Expect(err).To(MatchError(component.ErrTemperatureOrder))
		_, err = h.Rate(300.0, 350.0, 0.012)
		Expect(err).To(MatchError(component.ErrTemperatureOrder))
	})

	It("rejects non-positive area and conductance", func() {
		_, err := h.Rate(650.0, 350.0, 0)
		Expect(err).To(MatchError(component.ErrNonPositive))
		h.ContactConductance = 0
		_, err = h.Rate(650.0, 350.0, 0.012)
		Expect(err).To(MatchError(component.ErrNonPositive))
	})
})

var _ = Describe("HeatConvective", func() {
	var h *brakes.HeatConvective

	BeforeEach(func() {
		h = brakes.NewHeatConvective()
		h.ConvectiveCoefficient = 45.0
	})

	It("always loses heat while the pad runs hotter than the surroundings", func() {
		rate, err := h.Rate(650.0, 300.0, 0.03)
		Expect(err).NotTo(HaveOccurred())
		Expect(rate).To(BeNumerically("<", 0))
		Expect(rate).To(BeNumerically("~", -45.0*350.0*0.03, 1e-9))
	})

	It("rejects a pad at or below the surrounding temperature", func() {
		_, err := h.Rate(300.0, 300.0, 0.03)
		Expect(err).To(MatchError(component.ErrTemperatureOrder))
	})

	It("rejects non-positive area and coefficient", func() {
		_, err := h.Rate(650.0, 300.0, -1.0)
		Expect(err).To(MatchError(component.ErrNonPositive))
		h.ConvectiveCoefficient = -3.0
		_, err = h.Rate(650.0, 300.0, 0.03)
		Expect(err).To(MatchError(component.ErrNonPositive))
	})

	It("reports errors through the generic interface too", func() {
		_, err := h.Evaluate(component.Values{
			"pad_temperature":         280.0,
			"surrounding_temperature": 300.0,
			"pad_area":                0.03,
		})
		Expect(err).To(MatchError(component.ErrTemperatureOrder))
	})
})
