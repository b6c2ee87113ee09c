//Package mdplot draws the results of the goMD analyses with the gonum
//plotting library.
package mdplot

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// RDF saves a line plot of a radial distribution function, as returned
// by md.Frame.RDF, with each point at the middle of its distance shell.
// The image format is taken from the extension of plotname.
func RDF(g []float64, step float64, title, plotname string) error {
	if len(g) == 0 {
		return fmt.Errorf("mdplot.RDF: empty distribution")
	}
	pts := make(plotter.XYs, len(g))
	for i, v := range g {
		pts[i].X = (float64(i) + 0.5) * step
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mdplot.RDF: %v", err)
	}
	p := basicPlot(title, "r (A)", "g(r)")
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}

// MolCounts saves a bar chart with the number of molecules of each
// formula, as returned by md.Frame.CountMols. Bars come out in
// alphabetical formula order. The image format is taken from the
// extension of plotname.
func MolCounts(counts map[string]int, title, plotname string) error {
	if len(counts) == 0 {
		return fmt.Errorf("mdplot.MolCounts: empty count map")
	}
	formulas := make([]string, 0, len(counts))
	for f := range counts {
		formulas = append(formulas, f)
	}
	sort.Strings(formulas)
	vals := make(plotter.Values, len(formulas))
	for i, f := range formulas {
		vals[i] = float64(counts[f])
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return fmt.Errorf("mdplot.MolCounts: %v", err)
	}
	p := basicPlot(title, "", "molecules")
	p.Add(bars)
	p.NominalX(formulas...)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}

// FormulaSeries saves a line plot of how many molecules with the given
// formula each frame of a trajectory has, from the per-frame counts
// returned by md.ConcCountMols. The image format is taken from the
// extension of plotname.
func FormulaSeries(counts []map[string]int, formula, title, plotname string) error {
	if len(counts) == 0 {
		return fmt.Errorf("mdplot.FormulaSeries: no frames given")
	}
	pts := make(plotter.XYs, len(counts))
	for i, m := range counts {
		pts[i].X = float64(i)
		pts[i].Y = float64(m[formula])
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("mdplot.FormulaSeries: %v", err)
	}
	p := basicPlot(title, "frame", formula+" molecules")
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, plotname)
}
