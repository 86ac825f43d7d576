package chart_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/isingplot/internal/chart"
	"github.com/san-kum/isingplot/internal/lattice"
	"github.com/san-kum/isingplot/internal/series"
)

type recorder struct {
	figures []*chart.Figure
	err     error
}

func (r *recorder) Show(fig *chart.Figure) error {
	r.figures = append(r.figures, fig)
	return r.err
}

func render(fig *chart.Figure, format string) []byte {
	w, err := fig.Plot.WriterTo(fig.Width, fig.Height, format)
	Expect(err).NotTo(HaveOccurred())
	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	Expect(err).NotTo(HaveOccurred())
	return buf.Bytes()
}

var _ = Describe("Heatmap", func() {
	var m lattice.SpinMatrix

	BeforeEach(func() {
		m = lattice.SpinMatrix{{1, -1}, {-1, 1}}
	})

	It("reverses the row order for display", func() {
		fig, err := chart.NewHeatmap(m, "2", "1.0", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.IsHeatmap()).To(BeTrue())
		Expect(mat.Row(nil, 0, fig.Cells)).To(Equal([]float64{-1, 1}))
		Expect(mat.Row(nil, 1, fig.Cells)).To(Equal([]float64{1, -1}))
	})

	It("leaves the source matrix untouched", func() {
		_, err := chart.NewHeatmap(m, "2", "1.0", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(m).To(Equal(lattice.SpinMatrix{{1, -1}, {-1, 1}}))
	})

	It("embeds the lattice size and temperature", func() {
		fig, err := chart.NewHeatmap(m, "16", "2.26", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.Title).To(Equal("Configurations of spins L = 16 and T*=2.26"))
		Expect(fig.Name).To(Equal("config_L=16_T=2.26"))
		Expect(fig.Width).To(Equal(chart.Pixels(600)))
		Expect(fig.Height).To(Equal(chart.Pixels(600)))
	})

	It("labels ticks from 1", func() {
		fig, err := chart.NewHeatmap(m, "2", "1.0", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		ticks := fig.Plot.X.Tick.Marker.Ticks(fig.Plot.X.Min, fig.Plot.X.Max)
		Expect(ticks).To(HaveLen(2))
		Expect(ticks[0].Label).To(Equal("1"))
		Expect(ticks[0].Value).To(Equal(1.0))
		Expect(ticks[1].Label).To(Equal("2"))
		Expect(fig.Plot.X.Min).To(Equal(0.5))
		Expect(fig.Plot.Y.Max).To(Equal(2.5))
	})

	It("thins tick labels on large lattices", func() {
		big := make(lattice.SpinMatrix, 35)
		for i := range big {
			big[i] = make([]int, 35)
			for j := range big[i] {
				big[i][j] = 1
			}
		}
		fig, err := chart.NewHeatmap(big, "35", "10", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		ticks := fig.Plot.Y.Tick.Marker.Ticks(fig.Plot.Y.Min, fig.Plot.Y.Max)
		Expect(ticks).To(HaveLen(35))
		Expect(ticks[0].Label).To(Equal("1"))
		Expect(ticks[1].Label).To(BeEmpty())
		Expect(ticks[4].Label).To(Equal("5"))
		Expect(ticks[34].Label).To(Equal("35"))
	})

	It("fails on ragged and empty matrices", func() {
		_, err := chart.NewHeatmap(lattice.SpinMatrix{{1, 1}, {1}}, "2", "1.0", chart.DefaultOptions())
		Expect(errors.Is(err, lattice.ErrRagged)).To(BeTrue())

		_, err = chart.NewHeatmap(lattice.SpinMatrix{}, "0", "1.0", chart.DefaultOptions())
		Expect(errors.Is(err, lattice.ErrEmpty)).To(BeTrue())
	})

	It("draws to an image", func() {
		fig, err := chart.NewHeatmap(m, "2", "1.0", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(render(fig, "svg")).To(ContainSubstring("<svg"))
		Expect(render(fig, "png")).NotTo(BeEmpty())
	})
})

var _ = Describe("Scatter", func() {
	var ss []series.Series

	BeforeEach(func() {
		ss = []series.Series{
			{Label: "L=8", X: []float64{1, 2, 3}, Y: []float64{0.1, 0.5, 0.2},
				Style: series.Style{Color: series.Blue, Marker: series.TriangleUpOpenDot}},
			{Label: "L=16", X: []float64{1, 2, 3}, Y: []float64{0.2, 0.9, 0.3},
				Style: series.Style{Color: series.Green, Marker: series.SquareOpenDot}},
			{Label: "L=36", X: []float64{1.5, 2.5}, Y: []float64{0.4, 1.2},
				Style: series.Style{Color: series.Brown, Marker: series.OctagonOpenDot}},
		}
	})

	It("composes every series with styled axes", func() {
		fig, err := chart.NewScatter("heat_capacity", ss, "Reduced Temperature T*", "Heat Capacity", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.IsHeatmap()).To(BeFalse())
		Expect(fig.Name).To(Equal("heat_capacity"))
		Expect(fig.Series).To(HaveLen(3))
		Expect(fig.Plot.X.Label.Text).To(Equal("Reduced Temperature T*"))
		Expect(fig.Plot.Y.Label.Text).To(Equal("Heat Capacity"))
		Expect(fig.Plot.X.Label.TextStyle.Font.Size).To(Equal(chart.Pixels(20)))
		Expect(fig.Plot.Y.Tick.Length).To(Equal(chart.Pixels(8)))
		Expect(fig.Plot.Y.Tick.LineStyle.Width).To(Equal(chart.Pixels(2)))
	})

	It("keeps extreme points inside the frame", func() {
		fig, err := chart.NewScatter("heat_capacity", ss, "T*", "C", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		Expect(fig.Plot.X.Min).To(BeNumerically("<", 1))
		Expect(fig.Plot.X.Max).To(BeNumerically(">", 3))
		Expect(fig.Plot.Y.Min).To(BeNumerically("<", 0.1))
		Expect(fig.Plot.Y.Max).To(BeNumerically(">", 1.2))
	})

	It("draws every marker shape", func() {
		fig, err := chart.NewScatter("m", ss, "T*", "<m>", chart.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(render(fig, "svg")).To(ContainSubstring("<svg"))
	})
})

var _ = Describe("Renderer", func() {
	It("shows the heatmap with rows reversed", func() {
		rec := &recorder{}
		r := chart.NewRenderer(rec, chart.DefaultOptions())

		Expect(r.Heatmap(lattice.SpinMatrix{{1, -1}, {-1, 1}}, "2", "1.0")).To(Succeed())
		Expect(rec.figures).To(HaveLen(1))
		Expect(mat.Row(nil, 0, rec.figures[0].Cells)).To(Equal([]float64{-1, 1}))
		Expect(mat.Row(nil, 1, rec.figures[0].Cells)).To(Equal([]float64{1, -1}))
	})

	It("does not show figures that fail to build", func() {
		rec := &recorder{}
		r := chart.NewRenderer(rec, chart.DefaultOptions())

		Expect(r.Heatmap(lattice.SpinMatrix{{1}, {1, 1}}, "2", "1.0")).NotTo(Succeed())
		Expect(rec.figures).To(BeEmpty())
	})

	It("propagates display errors", func() {
		boom := errors.New("viewer unavailable")
		rec := &recorder{err: boom}
		r := chart.NewRenderer(rec, chart.DefaultOptions())

		err := r.Scatter("m", nil, "T*", "<m>")
		Expect(err).To(MatchError(boom))
		Expect(rec.figures).To(HaveLen(1))
	})
})

var _ = Describe("GlyphFor", func() {
	DescribeTable("returns a drawer for each marker",
		func(m series.Marker) {
			Expect(chart.GlyphFor(m)).NotTo(BeNil())
		},
		Entry("triangle", series.TriangleUpOpenDot),
		Entry("square", series.SquareOpenDot),
		Entry("cross", series.CrossOpenDot),
		Entry("octagon", series.OctagonOpenDot),
	)
})
