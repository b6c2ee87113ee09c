/*
 * options.go, part of gomd.
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

import "runtime"

// Mode selects how the neighbor search decides whether two atoms are
// bonded.
type Mode int

const (
	//ByBondLength uses a per-type-pair table of distance cutoffs.
	ByBondLength Mode = iota
	//ByCutOff uses one distance cutoff for every pair of types.
	ByCutOff
)

// ModeFromString returns the Mode corresponding to the given name, as
// used in analysis input files ("bond_length" or "cut_off").
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "bond_length":
		return ByBondLength, nil
	case "cut_off":
		return ByCutOff, nil
	}
	return 0, configErrorf("ModeFromString: unknown neighbor search mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ByBondLength:
		return "bond_length"
	case ByCutOff:
		return "cut_off"
	}
	return "unknown"
}

// Options holds the settings for the neighbor search and the analyses
// built on it.
type Options struct {
	mode        Mode
	cutoff      float64
	bondLengths [][]float64
	table       *TypeTable
	cpus        int
	step        float64
	end         float64
	skip        int
}

// DefaultOptions returns an Options with the default settings: bond_length mode
// with no table set, as many goroutines as logical CPUs, a 0.1 distance step
// and a 10 A limit for RDFs, and no frame skipping.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.mode = ByBondLength
	ret.cutoff = -1
	ret.bondLengths = nil
	ret.cpus = runtime.NumCPU()
	ret.step = 0.1
	ret.end = 10
	ret.skip = 1
	return ret
}

// Returns the current neighbor search mode and sets it, if a value
// is given.
func (r *Options) Mode(mode ...Mode) Mode {
	ret := r.mode
	if len(mode) > 0 {
		r.mode = mode[0]
	}
	return ret
}

// Returns the current value of the global distance cutoff (-1 if it has
// not been set) and sets it, if a valid value is given.
func (r *Options) CutOff(cutoff ...float64) float64 {
	ret := r.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		r.cutoff = cutoff[0]
	}
	return ret
}

// Returns the current per-type-pair table of bond distance cutoffs, or
// nil if it has not been set, and sets it, if one is given. The table
// is indexed by the 1-based atom types minus one.
func (r *Options) BondLengths(bondLengths ...[][]float64) [][]float64 {
	ret := r.bondLengths
	if len(bondLengths) > 0 && bondLengths[0] != nil {
		r.bondLengths = bondLengths[0]
	}
	return ret
}

// Returns the type table mapping atom types to elements, to be attached
// to frames that come without one (as those read from a trajectory file
// do), and sets it, if one is given.
func (r *Options) Table(table ...*TypeTable) *TypeTable {
	ret := r.table
	if len(table) > 0 && table[0] != nil {
		r.table = table[0]
	}
	return ret
}

// Returns the current value of the Cpus option (the number of goroutines
// to use in the concurrent calculations) and sets it, if a valid value
// is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

// Returns the skipped frames (for functions where it's applicable) and
// sets it, if a valid value is given.
func (r *Options) Skip(skip ...int) int {
	ret := r.skip
	if len(skip) > 0 && skip[0] > 0 {
		r.skip = skip[0]
	}
	return ret
}

// Returns the distance step to be used in the RDF calculation and sets
// it, if a valid value is given.
func (r *Options) Step(step ...float64) float64 {
	ret := r.step
	if len(step) > 0 && step[0] > 0 {
		r.step = step[0]
	}
	return ret
}

// Returns the maximum distance to be considered in the RDF calculation
// and sets it, if a valid value is given.
func (r *Options) End(end ...float64) float64 {
	ret := r.end
	if len(end) > 0 && end[0] > 0 {
		r.end = end[0]
	}
	return ret
}

// thresholds returns the T x T table of pair distance cutoffs implied
// by the options, for T atom types. In cut_off mode every entry is the
// global cutoff; in bond_length mode the user-given table is checked
// for shape, symmetry and sign, and returned.
func (r *Options) thresholds(T int) ([][]float64, error) {
	switch r.mode {
	case ByCutOff:
		if r.cutoff <= 0 {
			return nil, configErrorf("cut_off mode needs a positive cutoff, have %v", r.cutoff)
		}
		thres := make([][]float64, T)
		for i := range thres {
			thres[i] = make([]float64, T)
			for j := range thres[i] {
				thres[i][j] = r.cutoff
			}
		}
		return thres, nil
	case ByBondLength:
		bl := r.bondLengths
		if bl == nil {
			return nil, configErrorf("bond_length mode needs a bond length table")
		}
		if len(bl) != T {
			return nil, configErrorf("bond length table has %d rows for %d atom types", len(bl), T)
		}
		for i, row := range bl {
			if len(row) != T {
				return nil, configErrorf("row %d of the bond length table has %d entries for %d atom types", i, len(row), T)
			}
			for j, v := range row {
				if v < 0 {
					return nil, configErrorf("negative bond length %v for types %d-%d", v, i+1, j+1)
				}
				if bl[j][i] != v {
					return nil, configErrorf("bond length table is not symmetric: entry %d,%d is %v but entry %d,%d is %v", i+1, j+1, v, j+1, i+1, bl[j][i])
				}
			}
		}
		return bl, nil
	}
	return nil, configErrorf("unknown neighbor search mode %d", int(r.mode))
}

// ntypes returns the number of atom types to validate the search
// against: the size of the frame's type table if there is one, the size
// of the bond length table otherwise. In cut_off mode with no table
// attached, the largest type in the frame is used.
func (r *Options) ntypes(F *Frame) int {
	if F.Table != nil {
		return F.Table.Len()
	}
	if r.mode == ByBondLength && r.bondLengths != nil {
		return len(r.bondLengths)
	}
	T := 0
	for _, t := range F.Types {
		if t > T {
			T = t
		}
	}
	return T
}
