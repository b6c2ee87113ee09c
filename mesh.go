/*
 * mesh.go, part of gomd.
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

import "math"

// mesh is a cell list: a uniform grid over the periodic cell, with the
// atoms bucketed by grid cell. Buckets are stored flattened, as runs of
// atom indices in one slice, with a start offset per cell id.
type mesh struct {
	n      [3]int     //cells per axis
	size   [3]float64 //actual cell size per axis, >= the requested mesh length
	cell   [3]float64
	w      [][3]float64 //positions wrapped into [0,L) per axis
	start  []int        //len ncells+1; bucket c is atoms[start[c]:start[c+1]]
	atoms  []int
	deltas [3][]int //periodic stencil offsets per axis, no cell repeated
}

// newMesh wraps the frame positions into the cell and buckets them into
// a grid of cells of at least meshLength per side. The stencil offsets
// are made wide enough that any two atoms within reach of each other
// share at least one stencil block, even when meshLength was clamped
// below reach by a small cell.
func newMesh(F *Frame, meshLength, reach float64) *mesh {
	m := new(mesh)
	m.cell = F.Cell
	N := F.Len()
	for a := 0; a < 3; a++ {
		n := int(m.cell[a] / meshLength)
		if n < 1 {
			n = 1
		}
		m.n[a] = n
		m.size[a] = m.cell[a] / float64(n)
	}
	m.w = make([][3]float64, N)
	for i := 0; i < N; i++ {
		for a := 0; a < 3; a++ {
			x := math.Mod(F.Pos.At(i, a), m.cell[a])
			if x < 0 {
				x += m.cell[a]
			}
			if x >= m.cell[a] { //rounding can push a small negative up to L exactly
				x = 0
			}
			m.w[i][a] = x
		}
	}
	ncells := m.n[0] * m.n[1] * m.n[2]
	m.start = make([]int, ncells+1)
	cid := make([]int, N)
	for i := 0; i < N; i++ {
		c, _ := m.cellOf(m.w[i])
		cid[i] = c
		m.start[c+1]++
	}
	for c := 0; c < ncells; c++ {
		m.start[c+1] += m.start[c]
	}
	m.atoms = make([]int, N)
	next := make([]int, ncells)
	copy(next, m.start[:ncells])
	for i := 0; i < N; i++ {
		m.atoms[next[cid[i]]] = i
		next[cid[i]]++
	}
	for a := 0; a < 3; a++ {
		r := int(reach/m.size[a]) + 1
		if 2*r+1 >= m.n[a] {
			//the stencil spans the whole axis, so just take every cell once
			m.deltas[a] = make([]int, m.n[a])
			for d := range m.deltas[a] {
				m.deltas[a][d] = d
			}
			continue
		}
		ds := make([]int, 0, 2*r+1)
		for d := -r; d <= r; d++ {
			ds = append(ds, (d+m.n[a])%m.n[a])
		}
		m.deltas[a] = ds
	}
	return m
}

// cellOf returns the cell id and the integer cell coordinates for a
// wrapped position.
func (m *mesh) cellOf(w [3]float64) (int, [3]int) {
	var c [3]int
	for a := 0; a < 3; a++ {
		k := int(w[a] / m.size[a])
		if k >= m.n[a] { //w[a] can round up to the cell length
			k = m.n[a] - 1
		}
		c[a] = k
	}
	return (c[2]*m.n[1]+c[1])*m.n[0] + c[0], c
}

// dist returns the minimum-image distance between atoms i and j: each
// component of the displacement is folded back by one cell length if it
// exceeds half the cell.
func (m *mesh) dist(i, j int) float64 {
	var s float64
	for a := 0; a < 3; a++ {
		d := m.w[i][a] - m.w[j][a]
		if d > m.cell[a]/2 {
			d -= m.cell[a]
		} else if d < -m.cell[a]/2 {
			d += m.cell[a]
		}
		s += d * d
	}
	return math.Sqrt(s)
}

// scan calls fn with every atom j found in the stencil block around the
// cell of atom i, including i itself exactly once. Each bucket in the
// block is visited a single time, so no j is reported twice.
func (m *mesh) scan(i int, fn func(j int)) {
	_, c := m.cellOf(m.w[i])
	for _, dz := range m.deltas[2] {
		z := c[2] + dz
		if z >= m.n[2] {
			z -= m.n[2]
		}
		for _, dy := range m.deltas[1] {
			y := c[1] + dy
			if y >= m.n[1] {
				y -= m.n[1]
			}
			base := (z*m.n[1] + y) * m.n[0]
			for _, dx := range m.deltas[0] {
				x := c[0] + dx
				if x >= m.n[0] {
					x -= m.n[0]
				}
				cell := base + x
				for k := m.start[cell]; k < m.start[cell+1]; k++ {
					fn(m.atoms[k])
				}
			}
		}
	}
}
