/*
 * doc.go, part of gomd.
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
 */

/*Package md is the main package of the goMD library. It analyzes frames of
molecular dynamics simulations in periodic orthorhombic cells: it finds which
atoms are bonded, groups them into molecules and derives per-frame statistics
from that.


	**goMD Capabilities**


    Builds the neighbor list (bond graph) of a frame from per-type-pair bond
	lengths or from one global cutoff, with a cell mesh sized to the cutoffs,
	so the search is linear in the number of atoms. The minimum-image
	convention takes care of bonds across the periodic boundaries.

    Splits a frame into molecules (the connected components of the bond
	graph) and counts or groups them by molecular formula.

    Counts bonds by the types of the atoms involved, lists all the bonds of a
	frame as an edge index, and sums the momenta of the atoms.

    Computes site-site radial distribution functions between pairs of atom
	types.

    Reads and writes LAMMPS-style text dump trajectories, plain or compressed
	with gzip or zstd (the dump subpackage), and counts molecules over whole
	trajectories concurrently.

    Turns trajectories into time series of per-frame values and computes
	correlation functions on them (the mdstat subpackage).

    Presents the bond graph as a gonum graph (the molgraph subpackage) and
	plots the analyses (the mdplot subpackage).

*/
package md
