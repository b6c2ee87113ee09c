/*
 * molecules.go, part of gomd.
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

// Molecules returns the connected components of the bond graph: each
// molecule is a maximal set of atoms reachable from one another through
// bonds. Atoms in each molecule come out in ascending order and the
// molecules are ordered by their first atom, so the result for a given
// list is deterministic. An atom with no bonds is a molecule of one.
func (nl *NeighborList) Molecules() [][]int {
	N := nl.Len()
	parent := make([]int, N)
	rank := make([]int, N)
	for i := range parent {
		parent[i] = i
	}
	//iterative find with path compression, pointing each node
	//to its grandparent as it walks up
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	//union by rank
	union := func(u, v int) {
		ru := find(u)
		rv := find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}
	for i := 0; i < N; i++ {
		for _, j := range nl.Neighbors(i) {
			if j > i { //the adjacency is symmetric, one direction is enough
				union(i, j)
			}
		}
	}
	mols := make([][]int, 0, N)
	slot := make([]int, N)
	for i := range slot {
		slot[i] = -1
	}
	for i := 0; i < N; i++ {
		r := find(i)
		if slot[r] < 0 {
			slot[r] = len(mols)
			mols = append(mols, []int{})
		}
		mols[slot[r]] = append(mols[slot[r]], i)
	}
	return mols
}
