/*Little tests with a practical shape: analyze a frame of waters and
 * draw the results into the test directory.*/

package mdplot

import (
	"testing"

	md "github.com/rmera/gomd"
	v3 "github.com/rmera/gomd/v3"
)

func TestPlots(Te *testing.T) {
	pos := []float64{
		2, 2, 2,
		2.96, 2, 2,
		1.7596, 2.9294, 2,
		10, 10, 10,
		10.96, 10, 10,
		9.7596, 10.9294, 10,
		19.6, 5, 5,
		0.56, 5, 5,
		19.3596, 5.9294, 5,
	}
	p, err := v3.NewMatrix(pos)
	if err != nil {
		Te.Fatal(err)
	}
	F, err := md.NewFrame(p, []int{1, 2, 2, 1, 2, 2, 1, 2, 2}, [3]float64{20, 20, 20})
	if err != nil {
		Te.Fatal(err)
	}
	F.Table = md.NewTypeTable([]string{"O", "H"})
	o := md.DefaultOptions()
	o.BondLengths([][]float64{{0, 1.2}, {1.2, 0}})
	g, _, err := F.RDF(1, 2, o)
	if err != nil {
		Te.Fatal(err)
	}
	if err := RDF(g, o.Step(), "O-H radial distribution", "../test/rdf.png"); err != nil {
		Te.Error(err)
	}
	nl, err := F.NeighborList(o)
	if err != nil {
		Te.Fatal(err)
	}
	counts, err := F.CountMols(nl.Molecules())
	if err != nil {
		Te.Fatal(err)
	}
	if err := MolCounts(counts, "Molecules by formula", "../test/mols.png"); err != nil {
		Te.Error(err)
	}
	series := []map[string]int{counts, counts, counts}
	if err := FormulaSeries(series, "O1H2", "Waters along the trajectory", "../test/waters.png"); err != nil {
		Te.Error(err)
	}
	//an empty input is an error, not an empty image
	if RDF(nil, 0.1, "nothing", "../test/nothing.png") == nil {
		Te.Error("An empty distribution should fail to plot")
	}
	if MolCounts(nil, "nothing", "../test/nothing.png") == nil {
		Te.Error("An empty count map should fail to plot")
	}
}
