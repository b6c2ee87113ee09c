/*
 * atomicdata.go, part of gomd.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

import "fmt"

//A map for assigning mass to elements.
//Note that just elements common in force-field simulations are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Fe": 55.84,
	"Cr": 51.996,
	"Si": 28.08,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"Li": 6.94,
	"Al": 26.98,
	"Ti": 47.87,
	"Ni": 58.69,
	"Pt": 195.08,
	"Au": 196.97,
	"Ar": 39.95,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 in the reference. H has only one bond anyway, so a longer radius does little harm.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Fe": 1.52, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
	"Li": 1.28,
	"Al": 1.21,
	"Ti": 1.60,
	"Ni": 1.24,
	"Pt": 1.36,
	"Au": 1.36,
	"Ar": 1.06,
}

// TypeTable maps the numeric atom types of a simulation (1-based, as
// they appear in LAMMPS-style data) to element symbols and masses.
type TypeTable struct {
	symbols []string
	masses  []float64
}

// NewTypeTable builds a TypeTable for the given symbols, in type order
// (the first symbol is type 1). Masses are filled in from the known
// elements; types with an unknown symbol get a mass of -1, which can be
// set later with SetMass.
func NewTypeTable(symbols []string) *TypeTable {
	T := new(TypeTable)
	T.symbols = make([]string, len(symbols))
	copy(T.symbols, symbols)
	T.masses = make([]float64, len(symbols))
	for i, v := range symbols {
		if m, ok := symbolMass[v]; ok {
			T.masses[i] = m
		} else {
			T.masses[i] = -1
		}
	}
	return T
}

// Len returns the number of atom types in the table.
func (T *TypeTable) Len() int { return len(T.symbols) }

// Symbol returns the element symbol for the (1-based) type t.
func (T *TypeTable) Symbol(t int) string { return T.symbols[t-1] }

// Mass returns the mass for the (1-based) type t, or -1 if no mass is
// known for it.
func (T *TypeTable) Mass(t int) float64 { return T.masses[t-1] }

// SetMass sets the mass for the (1-based) type t, overriding the
// element-wise default.
func (T *TypeTable) SetMass(t int, m float64) { T.masses[t-1] = m }

// CovalentThresholds returns a Len() x Len() symmetric table of bond
// distance cutoffs, built as the sum of the covalent radii of each pair
// of types plus the tolerance tol. It returns an error if any type has
// a symbol with no tabulated radius.
func (T *TypeTable) CovalentThresholds(tol float64) ([][]float64, error) {
	n := T.Len()
	radii := make([]float64, n)
	for i, v := range T.symbols {
		r, ok := symbolCovrad[v]
		if !ok {
			return nil, domainErrorf("CovalentThresholds: no covalent radius known for %s", v)
		}
		radii[i] = r
	}
	thres := make([][]float64, n)
	for i := 0; i < n; i++ {
		thres[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			thres[i][j] = radii[i] + radii[j] + tol
		}
	}
	return thres, nil
}

// String returns a one-line summary of the table, mostly for logging.
func (T *TypeTable) String() string {
	return fmt.Sprintf("TypeTable%v", T.symbols)
}
