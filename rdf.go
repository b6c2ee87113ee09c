/*
 * rdf.go, part of gomd.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package md

import (
	"log"
	"math"
	"sort"

	v3 "github.com/rmera/gomd/v3"
	"gonum.org/v1/gonum/floats"
)

// RDF returns the radial distribution function g(r) between the atoms
// of type ta and those of type tb, for one frame, plus the raw pair
// counts per distance shell. Shells are Step wide and go up to the End
// option; distances use the minimum image. End is cut at half the
// smallest cell length, where the minimum image stops being valid. The
// normalization is to the ideal gas at the same density, so a uniform
// system gives g(r) of about 1 at every r.
func (F *Frame) RDF(ta, tb int, options ...*Options) ([]float64, []float64, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	if ta < 1 || tb < 1 {
		return nil, nil, domainErrorf("RDF: atom types are 1-based, got %d and %d", ta, tb)
	}
	if F.Table != nil && (ta > F.Table.Len() || tb > F.Table.Len()) {
		return nil, nil, domainErrorf("RDF: type %d or %d not in the type table", ta, tb)
	}
	if err := F.checkCell(); err != nil {
		return nil, nil, errDecorate(err, "RDF")
	}
	end := o.End()
	if half := minCell(F.Cell) / 2; end > half {
		log.Printf("RDF: cutting the calculation at %.3f, half the smallest cell length, instead of the requested %.3f", half, end)
		end = half
	}
	step := o.Step()
	totalsteps := int(end / step)
	g := make([]float64, totalsteps)
	shell := make([]float64, totalsteps)
	var ais, bis []int
	for i, t := range F.Types {
		if t == ta {
			ais = append(ais, i)
		}
		if t == tb {
			bis = append(bis, i)
		}
	}
	if len(ais) == 0 || len(bis) == 0 || totalsteps == 0 {
		return g, shell, nil
	}
	pa := v3.Zeros(len(ais))
	pa.SomeVecs(F.Pos, ais)
	pb := v3.Zeros(len(bis))
	pb.SomeVecs(F.Pos, bis)
	dists := make([]float64, 0, len(ais)*len(bis))
	for i := range ais {
		for j := range bis {
			if ais[i] == bis[j] {
				continue
			}
			var s float64
			for a := 0; a < 3; a++ {
				d := math.Mod(pa.At(i, a)-pb.At(j, a), F.Cell[a])
				if d > F.Cell[a]/2 {
					d -= F.Cell[a]
				} else if d < -F.Cell[a]/2 {
					d += F.Cell[a]
				}
				s += d * d
			}
			if r := math.Sqrt(s); r <= end {
				dists = append(dists, r)
			}
		}
	}
	sort.Float64s(dists)
	prev := 0
	for k := 0; k < totalsteps; k++ {
		n := sort.SearchFloat64s(dists, float64(k+1)*step)
		shell[k] = float64(n - prev)
		prev = n
	}
	vol := F.Cell[0] * F.Cell[1] * F.Cell[2]
	rho := float64(len(bis)) / vol
	vp := (4.0 / 3.0) * math.Pi
	for k := range g {
		fk := float64(k)
		vshell := vp * (math.Pow((fk+1)*step, 3) - math.Pow(fk*step, 3))
		g[k] = shell[k] / vshell
	}
	floats.Scale(1/(rho*float64(len(ais))), g)
	return g, shell, nil
}
