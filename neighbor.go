/*
 * neighbor.go, part of gomd.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package md

import (
	"math"
	"sort"
)

// NeighborList is the bond graph of a frame: for every atom, the set of
// atoms within bonding distance of it. The adjacency is symmetric and
// has no self loops. Per-atom neighbor runs are stored sorted, in one
// flat slice, with a start offset per atom.
type NeighborList struct {
	start []int //len N+1; the neighbors of i are index[start[i]:start[i+1]]
	index []int
}

// Len returns the number of atoms in the list.
func (nl *NeighborList) Len() int { return len(nl.start) - 1 }

// Neighbors returns the atoms bonded to atom i, in ascending order.
// The returned slice is a view, not a copy.
func (nl *NeighborList) Neighbors(i int) []int {
	return nl.index[nl.start[i]:nl.start[i+1]]
}

// Degree returns the number of atoms bonded to atom i.
func (nl *NeighborList) Degree(i int) int { return nl.start[i+1] - nl.start[i] }

// NBonds returns the total number of bonds in the list. Each bond
// appears in the adjacency of both its atoms, so this is half the sum
// of all degrees.
func (nl *NeighborList) NBonds() int { return len(nl.index) / 2 }

// NeighborList builds the bond graph of the frame. Two atoms are bonded
// if their minimum-image distance does not exceed the cutoff for their
// pair of types, as resolved from the options (a per-pair bond length
// table, or one global cutoff). The search buckets the atoms into a
// cell mesh sized to the largest cutoff and only compares atoms sharing
// a stencil block, so it runs in O(N) for near-uniform density. It is
// split among as many goroutines as the Cpus option gives.
func (F *Frame) NeighborList(options ...*Options) (*NeighborList, error) {
	var o *Options
	if len(options) > 0 {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	N := F.Len()
	if N == 0 {
		return &NeighborList{start: []int{0}}, nil
	}
	T := o.ntypes(F)
	thres, err := o.thresholds(T)
	if err != nil {
		return nil, errDecorate(err, "NeighborList")
	}
	if err := F.checkCell(); err != nil {
		return nil, errDecorate(err, "NeighborList")
	}
	if err := F.checkTypes(T); err != nil {
		return nil, errDecorate(err, "NeighborList")
	}
	for i := 0; i < N; i++ {
		for a := 0; a < 3; a++ {
			if x := F.Pos.At(i, a); math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, domainErrorf("NeighborList: atom %d has a non-finite coordinate", i)
			}
		}
	}
	reach := 0.0
	for _, row := range thres {
		for _, v := range row {
			if v > reach {
				reach = v
			}
		}
	}
	meshLength := reach + 0.01 //cutoff + margin
	if meshLength*3 > minCell(F.Cell) {
		meshLength = minCell(F.Cell) / 3
	}
	m := newMesh(F, meshLength, reach)

	res := make([][]int, N)
	cpus := o.Cpus()
	if cpus > N {
		cpus = N
	}
	sigs := make([]chan bool, cpus)
	for i := range sigs {
		sigs[i] = make(chan bool)
	}
	chunk := N / cpus
	begin := 0
	for w := 0; w < cpus; w++ {
		end := begin + chunk
		if w == cpus-1 {
			end = N
		}
		go scanUnit(m, F.Types, thres, res, begin, end, sigs[w])
		begin = end
	}
	for _, s := range sigs {
		<-s
	}
	nl := new(NeighborList)
	nl.start = make([]int, N+1)
	for i, r := range res {
		nl.start[i+1] = nl.start[i] + len(r)
	}
	nl.index = make([]int, 0, nl.start[N])
	for _, r := range res {
		nl.index = append(nl.index, r...)
	}
	return nl, nil
}

// The worker function for the neighbor search. It fills the slots
// res[begin:end], which no other worker touches, and signals on sig
// when done.
func scanUnit(m *mesh, types []int, thres [][]float64, res [][]int, begin, end int, sig chan bool) {
	for i := begin; i < end; i++ {
		row := thres[types[i]-1]
		var found []int
		m.scan(i, func(j int) {
			if j == i {
				return
			}
			if m.dist(i, j) <= row[types[j]-1] {
				found = append(found, j)
			}
		})
		sort.Ints(found)
		res[i] = found
	}
	sig <- true
}

func minCell(cell [3]float64) float64 {
	min := cell[0]
	for _, l := range cell[1:] {
		if l < min {
			min = l
		}
	}
	return min
}
