package proton_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/radsim/internal/grid"
	"github.com/san-kum/radsim/internal/material"
	"github.com/san-kum/radsim/internal/proton"
)

var _ = Describe("Kinematics", func() {
	It("returns the rest frame for non-positive energy", func() {
		beta, gamma := proton.BetaGamma(0)
		Expect(beta).To(BeZero())
		Expect(gamma).To(Equal(1.0))

		beta, gamma = proton.BetaGamma(-10)
		Expect(beta).To(BeZero())
		Expect(gamma).To(Equal(1.0))

		Expect(proton.MomentumPC(0)).To(BeZero())
	})

	It("keeps beta strictly between 0 and 1", func() {
		for _, e := range []float64{1, 70, 150, 250, 1000} {
			beta, gamma := proton.BetaGamma(e)
			Expect(beta).To(BeNumerically(">", 0))
			Expect(beta).To(BeNumerically("<", 1))
			Expect(gamma).To(BeNumerically(">", 1))
		}
	})

	It("grows Wmax with energy", func() {
		Expect(proton.WMax(150)).To(BeNumerically(">", proton.WMax(70)))
		Expect(proton.WMax(70)).To(BeNumerically(">", 0))
	})
})

var _ = Describe("StoppingPowerMass", func() {
	var tbl *material.Table

	BeforeEach(func() {
		tbl = material.NewTable()
	})

	It("rejects unknown materials", func() {
		_, err := proton.StoppingPowerMass(150, "unobtainium", tbl)
		Expect(err).To(MatchError(proton.ErrUnknownMaterial))
	})

	It("is zero at zero energy", func() {
		s, err := proton.StoppingPowerMass(0, "water", tbl)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeZero())
	})

	It("falls with energy over the therapeutic range", func() {
		low, err := proton.StoppingPowerMass(10, "water", tbl)
		Expect(err).NotTo(HaveOccurred())
		high, err := proton.StoppingPowerMass(200, "water", tbl)
		Expect(err).NotTo(HaveOccurred())
		Expect(low).To(BeNumerically(">", high))
		Expect(high).To(BeNumerically(">", 0))
	})
})

var _ = Describe("CSDARange", func() {
	var water, lead material.Properties

	BeforeEach(func() {
		tbl := material.NewTable()
		water, _ = tbl.Lookup("water")
		lead, _ = tbl.Lookup("lead")
	})

	It("matches the empirical target range after calibration", func() {
		for _, e0 := range []float64{30, 70, 150, 250} {
			r := proton.CSDARange(e0, water, proton.DefaultDEMax)
			Expect(r).To(BeNumerically("~", proton.TargetRange(e0, water.Rho), 1e-9))
		}
	})

	It("increases monotonically with energy", func() {
		prev := 0.0
		for _, e0 := range []float64{10, 50, 100, 150, 200, 250} {
			r := proton.CSDARange(e0, water, proton.DefaultDEMax)
			Expect(r).To(BeNumerically(">", prev))
			prev = r
		}
	})

	It("shortens in denser materials", func() {
		Expect(proton.CSDARange(150, lead, proton.DefaultDEMax)).
			To(BeNumerically("<", proton.CSDARange(150, water, proton.DefaultDEMax)))
	})

	It("is zero for non-positive energy", func() {
		Expect(proton.CSDARange(0, water, proton.DefaultDEMax)).To(BeZero())
		Expect(proton.CSDARange(-5, water, proton.DefaultDEMax)).To(BeZero())
	})
})

var _ = Describe("BraggCurve", func() {
	var water material.Properties

	BeforeEach(func() {
		tbl := material.NewTable()
		water, _ = tbl.Lookup("water")
	})

	It("places the 150 MeV water peak near the literature depth", func() {
		depth, dose, rangeCm := proton.BraggCurve(150, water, 0.01, proton.DefaultSmoothFrac)

		peakIdx := 0
		for i, d := range dose {
			if d > dose[peakIdx] {
				peakIdx = i
			}
		}
		Expect(depth[peakIdx]).To(BeNumerically("~", 15.8, 1.0))
		Expect(rangeCm).To(BeNumerically("~", 15.8, 1.0))
	})

	It("deposits its maximum dose at the end of range, not the entrance", func() {
		depth, dose, rangeCm := proton.BraggCurve(150, water, 0.01, 0)

		peakIdx := 0
		for i, d := range dose {
			if d > dose[peakIdx] {
				peakIdx = i
			}
		}
		Expect(peakIdx).To(Equal(len(dose) - 1))
		Expect(depth[peakIdx]).To(BeNumerically("~", rangeCm, 1e-9))
		Expect(dose[1]).To(BeNumerically("<", 0.3))
	})

	It("normalizes the dose peak to 1 at or before the range", func() {
		depth, dose, rangeCm := proton.BraggCurve(150, water, 0.01, proton.DefaultSmoothFrac)

		peakIdx := 0
		for i, d := range dose {
			Expect(d).To(BeNumerically("<=", 1.0+1e-9))
			if d > dose[peakIdx] {
				peakIdx = i
			}
		}
		Expect(dose[peakIdx]).To(BeNumerically("~", 1.0, 1e-9))
		Expect(depth[peakIdx]).To(BeNumerically("<=", rangeCm))
	})

	It("starts at zero depth and increases monotonically", func() {
		depth, _, _ := proton.BraggCurve(100, water, 0.01, 0)
		Expect(depth[0]).To(BeZero())
		for i := 1; i < len(depth); i++ {
			Expect(depth[i]).To(BeNumerically(">", depth[i-1]))
		}
	})

	It("grows the range with energy", func() {
		_, _, r70 := proton.BraggCurve(70, water, 0.01, 0)
		_, _, r150 := proton.BraggCurve(150, water, 0.01, 0)
		_, _, r250 := proton.BraggCurve(250, water, 0.01, 0)
		Expect(r150).To(BeNumerically(">", r70))
		Expect(r250).To(BeNumerically(">", r150))
	})

	It("degrades gracefully at zero energy", func() {
		depth, dose, rangeCm := proton.BraggCurve(0, water, 0.01, proton.DefaultSmoothFrac)
		Expect(depth).To(Equal([]float64{0.0}))
		Expect(dose).To(Equal([]float64{0.0}))
		Expect(rangeCm).To(BeZero())
	})
})

var _ = Describe("Lateral scattering", func() {
	var water material.Properties

	BeforeEach(func() {
		tbl := material.NewTable()
		water, _ = tbl.Lookup("water")
	})

	It("is zero at zero depth or zero energy", func() {
		Expect(proton.LateralSigma(0, 150, water)).To(BeZero())
		Expect(proton.LateralSigma(10, 0, water)).To(BeZero())
		Expect(proton.HighlandTheta0(-1, 150, water)).To(BeZero())
	})

	It("widens with depth", func() {
		prev := 0.0
		for _, z := range []float64{1, 5, 10, 15} {
			sig := proton.LateralSigma(z, 150, water)
			Expect(sig).To(BeNumerically(">", prev))
			prev = sig
		}
	})
})

var _ = Describe("Curve helpers", func() {
	var tbl *material.Table
	var water material.Properties

	BeforeEach(func() {
		tbl = material.NewTable()
		water, _ = tbl.Lookup("water")
	})

	It("evaluates the stopping-power curve on the grid", func() {
		es, err := grid.Linear(10, 250, 120)
		Expect(err).NotTo(HaveOccurred())

		s, err := proton.StoppingPowerCurve(es, "water", tbl)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(HaveLen(len(es)))
	})

	It("propagates the unknown-material error", func() {
		es, _ := grid.Linear(10, 250, 10)
		_, err := proton.StoppingPowerCurve(es, "kryptonite", tbl)
		Expect(err).To(MatchError(proton.ErrUnknownMaterial))
	})

	It("tracks the target range formula across the grid", func() {
		es, _ := grid.Linear(10, 250, 25)
		rs := proton.RangeVsEnergy(es, water, proton.DefaultDEMax)
		for i, e := range es {
			Expect(rs[i]).To(BeNumerically("~", proton.TargetRange(e, water.Rho), 1e-9))
		}
	})

	It("aligns the lateral curve with its depth grid", func() {
		zs, _ := grid.Linear(0.1, 25, 120)
		sig := proton.LateralSigmaCurve(zs, 150, water)
		Expect(sig).To(HaveLen(len(zs)))
		Expect(sig[0]).To(BeNumerically(">=", 0))
	})
})
