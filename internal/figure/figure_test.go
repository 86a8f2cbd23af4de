package figure

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/nucviz/internal/config"
	"github.com/san-kum/nucviz/internal/physics"
)

var _ = Describe("Registry", func() {
	var (
		reg *Registry
		cfg *config.Config
	)

	BeforeEach(func() {
		reg = NewRegistry()
		cfg = config.DefaultConfig()
		cfg.Deformation.Points = 30
	})

	It("lists the built-in figures in order", func() {
		Expect(reg.List()).To(Equal([]string{"deformation", "fission", "separation"}))
		Expect(reg.Describe("fission")).NotTo(BeEmpty())
	})

	It("rejects unknown figures", func() {
		_, err := reg.Build("chart", cfg)
		Expect(err).To(MatchError(ContainSubstring("unknown figure")))
	})

	It("wraps builder errors with the figure name", func() {
		cfg.Deformation.M = 5
		_, err := reg.Build("deformation", cfg)
		Expect(err).To(MatchError(physics.ErrInvalidMultipole))
		Expect(err.Error()).To(HavePrefix("deformation:"))
	})
})

var _ = Describe("Deformation", func() {
	It("names the figure after the multipole", func() {
		cfg := config.DefaultConfig()
		cfg.Deformation.Points = 20

		fig, err := Deformation(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.IsSurface()).To(BeTrue())
		Expect(fig.Stem).To(Equal("octupole_Y30"))
		rows, cols := fig.Surface.Shape()
		Expect(rows).To(Equal(20))
		Expect(cols).To(Equal(20))
	})
})

var _ = Describe("Fission", func() {
	var fig *Figure

	BeforeEach(func() {
		var err error
		fig, err = Fission(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	It("draws one curve per ratio over the alpha grid", func() {
		Expect(fig.Series).To(HaveLen(4))
		for _, s := range fig.Series {
			Expect(s.X).To(HaveLen(200))
			Expect(s.Y).To(HaveLen(200))
			Expect(s.Y[0]).To(BeZero())
			Expect(s.X[len(s.X)-1]).To(BeNumerically("~", 0.5, 1e-12))
		}
		Expect(fig.Series[0].Label).To(Equal("Z²/A = 15"))
	})

	It("fixes the axis window and the zero line", func() {
		Expect(*fig.XRange).To(Equal(Range{0, 0.5}))
		Expect(*fig.YRange).To(Equal(Range{-10, 10}))
		Expect(fig.Guides).To(ContainElement(HaveField("Orientation", Horizontal)))
	})

	It("orders slopes by ratio", func() {
		last := math.Inf(1)
		for _, s := range fig.Series {
			slope := s.Y[len(s.Y)-1]
			Expect(slope).To(BeNumerically("<", last))
			last = slope
		}
	})
})

var _ = Describe("Separation", func() {
	It("plots S_n and S_2n from the embedded table", func() {
		fig, err := Separation(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Series).To(HaveLen(2))
		Expect(fig.Series[0].X[0]).To(Equal(109.0))
		Expect(fig.Series[1].X[0]).To(Equal(110.0))
		Expect(fig.Note).To(ContainSubstring("AME2020"))
		Expect(fig.Guides).To(HaveLen(1))
		Expect(fig.Guides[0].At).To(Equal(132.0))
		Expect(fig.Facts).To(ContainElement(Fact{Label: "shell closure", Value: "N=82 → A=132"}))
	})

	It("omits the shell closure when disabled", func() {
		cfg := config.DefaultConfig()
		cfg.Separation.ShellN = 0
		fig, err := Separation(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Guides).To(BeEmpty())
		Expect(fig.Facts).NotTo(ContainElement(HaveField("Label", "shell closure")))
	})

	It("adds the staggering indicator on request", func() {
		cfg := config.DefaultConfig()
		cfg.Separation.Staggering = true
		fig, err := Separation(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(fig.Series).To(HaveLen(3))
	})

	It("aligns series with gaps on a shared abscissa", func() {
		fig, err := Separation(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())

		xs, cols := fig.Aligned()
		Expect(xs).To(HaveLen(24))
		Expect(xs[0]).To(Equal(109.0))
		Expect(math.IsNaN(cols[1][0])).To(BeTrue())
		Expect(cols[0][0]).To(BeNumerically("~", 924.381-916.733, 1e-9))
	})
})

var _ = Describe("Bounds", func() {
	It("pads the data extent when no range is set", func() {
		fig := &Figure{Series: []Series{{X: []float64{0, 10}, Y: []float64{0, 100}}}}
		xr, yr := fig.Bounds()
		Expect(xr.Min).To(BeNumerically("~", -0.5, 1e-12))
		Expect(yr.Max).To(BeNumerically("~", 105, 1e-12))
	})
})
