/*
 * counts.go, part of gomd.
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

// MolFormula returns the formula string of one molecule, given as a
// list of atom indices: the symbol of each type present followed by its
// atom count, in ascending type order, e.g. "O1H2". Types with no atoms
// in the molecule are omitted.
func (F *Frame) MolFormula(mol []int) (string, error) {
	if F.Table == nil {
		return "", domainErrorf("MolFormula: the frame has no type table attached")
	}
	T := F.Table.Len()
	counts := make([]int, T)
	for _, a := range mol {
		if a < 0 || a >= F.Len() {
			return "", domainErrorf("MolFormula: atom index %d outside the frame", a)
		}
		t := F.Types[a]
		if t < 1 || t > T {
			return "", domainErrorf("MolFormula: atom %d has type %d, but only %d types are defined", a, t, T)
		}
		counts[t-1]++
	}
	ret := ""
	for t := 1; t <= T; t++ {
		if c := counts[t-1]; c > 0 {
			ret += fmt.Sprintf("%s%d", F.Table.Symbol(t), c)
		}
	}
	return ret, nil
}

// CountMols tallies the molecules of the frame by formula: how many
// molecules with each formula string the grouping contains.
func (F *Frame) CountMols(mols [][]int) (map[string]int, error) {
	ret := make(map[string]int)
	if len(mols) == 0 {
		return ret, nil
	}
	for _, mol := range mols {
		f, err := F.MolFormula(mol)
		if err != nil {
			return nil, errDecorate(err, "CountMols")
		}
		ret[f]++
	}
	return ret, nil
}

// GroupMols groups the molecules of the frame by formula: for each
// formula string, the list of molecules (as atom-index lists) with that
// formula.
func (F *Frame) GroupMols(mols [][]int) (map[string][][]int, error) {
	ret := make(map[string][][]int)
	if len(mols) == 0 {
		return ret, nil
	}
	for _, mol := range mols {
		f, err := F.MolFormula(mol)
		if err != nil {
			return nil, errDecorate(err, "GroupMols")
		}
		ret[f] = append(ret[f], mol)
	}
	return ret, nil
}

// CountBonds tallies the bonds of the neighbor list by the types of the
// two atoms involved. Keys are "Symbol-Symbol" with the symbols in
// ascending type order, and every pair of types gets a key, so pairs
// with no bonds report an explicit 0. An empty list gives an empty map.
func (F *Frame) CountBonds(nl *NeighborList) (map[string]int, error) {
	ret := make(map[string]int)
	if nl.Len() == 0 {
		return ret, nil
	}
	if F.Table == nil {
		return nil, domainErrorf("CountBonds: the frame has no type table attached")
	}
	if nl.Len() != F.Len() {
		return nil, domainErrorf("CountBonds: the neighbor list has %d atoms, the frame %d", nl.Len(), F.Len())
	}
	T := F.Table.Len()
	if err := F.checkTypes(T); err != nil {
		return nil, errDecorate(err, "CountBonds")
	}
	for a := 1; a <= T; a++ {
		for b := a; b <= T; b++ {
			ret[F.Table.Symbol(a)+"-"+F.Table.Symbol(b)] = 0
		}
	}
	for i := 0; i < nl.Len(); i++ {
		ti := F.Types[i]
		for _, j := range nl.Neighbors(i) {
			if j <= i { //count each bond once
				continue
			}
			a, b := ti, F.Types[j]
			if a > b {
				a, b = b, a
			}
			ret[F.Table.Symbol(a)+"-"+F.Table.Symbol(b)]++
		}
	}
	return ret, nil
}

// EdgeIndex returns the bonds of the list as two parallel slices of
// atom indices, sources and destinations, with source < destination,
// ordered by ascending source and then destination. Every bond appears
// exactly once.
func (nl *NeighborList) EdgeIndex() ([]int, []int) {
	src := make([]int, 0, nl.NBonds())
	dst := make([]int, 0, nl.NBonds())
	for i := 0; i < nl.Len(); i++ {
		for _, j := range nl.Neighbors(i) {
			if j > i {
				src = append(src, i)
				dst = append(dst, j)
			}
		}
	}
	return src, dst
}

type molCount struct {
	counts map[string]int
	err    error
}

// ConcCountMols counts the molecules by formula for every frame of a
// trajectory, processing up to Cpus frames concurrently. It returns one
// formula-count map per analyzed frame, in trajectory order. With the
// Skip option set to n, only every n-th frame is analyzed; skipped
// frames are still read. Frames that come without a type table, as the
// ones read from a file do, get the one in the Table option. Frames are
// independent, so no state is shared between the workers.
func ConcCountMols(traj Traj, options ...*Options) ([]map[string]int, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	cpus := o.Cpus()
	skip := o.Skip()
	results := make([]chan *molCount, cpus)
	for i := range results {
		results[i] = make(chan *molCount)
	}
	var ret []map[string]int
	read := 0
	for {
		launched := 0
		var rerr error
		for launched < cpus {
			F, err := traj.Next()
			if err != nil {
				rerr = err
				break
			}
			read++
			if (read-1)%skip != 0 {
				continue
			}
			go unitCountMols(F, results[launched], o)
			launched++
		}
		//collect every launched worker before looking at the read error,
		//so none is left blocked on its channel
		var werr error
		for k := 0; k < launched; k++ {
			r := <-results[k]
			if r.err != nil && werr == nil {
				werr = r.err
			}
			if werr == nil {
				ret = append(ret, r.counts)
			}
		}
		if werr != nil {
			return nil, errDecorate(werr, fmt.Sprintf("ConcCountMols: failed on the %d th analyzed frame", len(ret)))
		}
		if rerr != nil {
			if _, ok := rerr.(LastFrameError); ok {
				break
			}
			if Err, ok := rerr.(Error); ok {
				Err.Decorate(fmt.Sprintf("ConcCountMols: failed when reading the %d th frame", read))
				return nil, Err
			}
			return nil, rerr //somehow it wasn't one of ours. This should never happen.
		}
	}
	return ret, nil
}

// The worker function for the concurrent molecule count.
func unitCountMols(F *Frame, channelout chan *molCount, o *Options) {
	if F.Table == nil && o.Table() != nil {
		G := *F //don't touch the caller's frame
		G.Table = o.Table()
		F = &G
	}
	nl, err := F.NeighborList(o)
	if err != nil {
		channelout <- &molCount{nil, err}
		return
	}
	counts, err := F.CountMols(nl.Molecules())
	channelout <- &molCount{counts, err}
}
