/*
 * rdf_test.go, part of gomd.
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
	"fmt"
	"testing"
)

func TestRDFWater(Te *testing.T) {
	F := waterFrame(Te)
	g, shell, err := F.RDF(1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	//every O has its 2 H at 0.96 A, which falls in the [0.9, 1.0) shell
	if shell[9] != 6 {
		Te.Errorf("Expected 6 O-H pairs in the bonding shell, got %v", shell[9])
	}
	for k := 0; k < 9; k++ {
		if shell[k] != 0 {
			Te.Errorf("Shell %d should be empty, has %v pairs", k, shell[k])
		}
	}
	if g[9] <= 0 {
		Te.Errorf("g(r) should peak at the bonding shell, got %v", g[9])
	}
	fmt.Printf("O-H g(r) at the first peak: %.1f\n", g[9])
}

func TestRDFUniform(Te *testing.T) {
	F := randomFrame(Te, 400, [3]float64{10, 10, 10}, 1, 13)
	o := DefaultOptions()
	o.End(4.0)
	o.Step(0.25)
	g, _, err := F.RDF(1, 1, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(g) != 16 {
		Te.Fatalf("Expected 16 shells, got %d", len(g))
	}
	//away from r=0 a uniform system has to average to about 1
	avg := 0.0
	for _, v := range g[8:] {
		avg += v
	}
	avg /= float64(len(g[8:]))
	fmt.Printf("Average g(r) between 2 and 4 A for the uniform system: %.3f\n", avg)
	if avg < 0.9 || avg > 1.1 {
		Te.Errorf("The uniform system averages g(r) = %.3f, expected about 1", avg)
	}
}

func TestRDFCut(Te *testing.T) {
	//the default End of 10 A does not fit in this cell, so the
	//calculation has to stop at half the smallest cell length
	F := randomFrame(Te, 50, [3]float64{8, 10, 12}, 1, 17)
	o := DefaultOptions()
	o.Step(0.25)
	g, _, err := F.RDF(1, 1, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(g) != 16 { //4 A in 0.25 A steps
		Te.Errorf("Expected the calculation cut at 4 A (16 shells), got %d shells", len(g))
	}
}

func TestRDFEmptySelection(Te *testing.T) {
	F := randomFrame(Te, 50, [3]float64{10, 10, 10}, 1, 19)
	g, shell, err := F.RDF(1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	for k := range g {
		if g[k] != 0 || shell[k] != 0 {
			Te.Fatalf("A selection with no atoms should give all zeros, got %v %v", g[k], shell[k])
		}
	}
}

func TestRDFErrors(Te *testing.T) {
	F := waterFrame(Te)
	if _, _, err := F.RDF(0, 1); err == nil {
		Te.Error("A 0 type should fail, types are 1-based")
	} else if _, ok := err.(*DomainError); !ok {
		Te.Errorf("Expected a DomainError, got %T: %v", err, err)
	}
	if _, _, err := F.RDF(1, 3); err == nil {
		Te.Error("A type outside the table should fail")
	} else if _, ok := err.(*DomainError); !ok {
		Te.Errorf("Expected a DomainError, got %T: %v", err, err)
	}
	bad := &Frame{Pos: F.Pos, Types: F.Types, Cell: [3]float64{20, 0, 20}, Table: F.Table}
	if _, _, err := bad.RDF(1, 2); err == nil {
		Te.Error("A degenerate cell should fail")
	} else if _, ok := err.(*DomainError); !ok {
		Te.Errorf("Expected a DomainError, got %T: %v", err, err)
	}
}
