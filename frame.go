/*
 * frame.go, part of gomd.
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
	v3 "github.com/rmera/gomd/v3"
)

// Frame holds one snapshot of a simulation in a periodic orthorhombic
// cell: positions, velocities (optional), the 1-based atom type of each
// atom and the cell lengths. The zero-th atom of Pos, Vel and Types is
// the same atom. A Frame with nil Pos is an empty frame with no atoms.
type Frame struct {
	Pos   *v3.Matrix //Nx3, Angstrom
	Vel   *v3.Matrix //Nx3, may be nil
	Types []int      //1-based types, as in LAMMPS data
	Cell  [3]float64 //orthorhombic cell lengths
	Step  int        //the timestep of the snapshot
	Table *TypeTable //may be nil if no per-type data is needed
}

// NewFrame builds a Frame after checking that positions and types agree
// in size and that all cell lengths are positive. A nil pos with no
// types gives a valid, empty frame. Velocities, the timestep and the
// type table can be set on the returned frame directly.
func NewFrame(pos *v3.Matrix, types []int, cell [3]float64) (*Frame, error) {
	F := &Frame{Pos: pos, Types: types, Cell: cell}
	if pos == nil && len(types) != 0 {
		return nil, domainErrorf("NewFrame: %d types given for a frame with no coordinates", len(types))
	}
	if pos != nil && pos.NVecs() != len(types) {
		return nil, domainErrorf("NewFrame: %d coordinates but %d types", pos.NVecs(), len(types))
	}
	if err := F.checkCell(); err != nil {
		return nil, errDecorate(err, "NewFrame")
	}
	return F, nil
}

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	if F.Pos == nil {
		return 0
	}
	return F.Pos.NVecs()
}

func (F *Frame) checkCell() error {
	for i, l := range F.Cell {
		if l <= 0 {
			return domainErrorf("cell length %d is %v, cell lengths must be positive", i, l)
		}
	}
	return nil
}

// checkTypes verifies that every atom type in the frame is in 1..T.
func (F *Frame) checkTypes(T int) error {
	for i, t := range F.Types {
		if t < 1 || t > T {
			return domainErrorf("atom %d has type %d, but only %d types are defined", i, t, T)
		}
	}
	return nil
}

// Masses returns a slice with the mass of each atom in the frame, taken
// from the attached type table.
func (F *Frame) Masses() ([]float64, error) {
	if F.Table == nil {
		return nil, domainErrorf("Masses: the frame has no type table attached")
	}
	if err := F.checkTypes(F.Table.Len()); err != nil {
		return nil, errDecorate(err, "Masses")
	}
	masses := make([]float64, F.Len())
	for i, t := range F.Types {
		m := F.Table.Mass(t)
		if m < 0 {
			return nil, domainErrorf("Masses: no mass known for type %d (%s)", t, F.Table.Symbol(t))
		}
		masses[i] = m
	}
	return masses, nil
}

// SumOfMomentums returns the total linear momentum of the frame, i.e.
// the mass-weighted sum of all velocities, as a 1x3 matrix. The frame
// must have velocities and a type table with masses, unless it is
// empty, in which case the zero vector is returned.
func (F *Frame) SumOfMomentums() (*v3.Matrix, error) {
	p := v3.Zeros(1)
	if F.Len() == 0 {
		return p, nil
	}
	if F.Vel == nil {
		return nil, domainErrorf("SumOfMomentums: the frame has no velocities")
	}
	if F.Vel.NVecs() != F.Len() {
		return nil, domainErrorf("SumOfMomentums: %d velocities for %d atoms", F.Vel.NVecs(), F.Len())
	}
	masses, err := F.Masses()
	if err != nil {
		return nil, errDecorate(err, "SumOfMomentums")
	}
	tmp := v3.Zeros(1)
	for i := 0; i < F.Len(); i++ {
		tmp.Scale(masses[i], F.Vel.VecView(i))
		p.Add(p, tmp)
	}
	return p, nil
}
