/*
 * dump_test.go, part of gomd.
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
 */

package dump

import (
	"fmt"
	"math"
	"os"
	"testing"

	md "github.com/rmera/gomd"
)

var rootdirtest string = "../test"

func TestDumpRead(Te *testing.T) {
	fmt.Println("Dump read test!")
	D, err := New(rootdirtest + "/water.dump")
	if err != nil {
		Te.Fatal(err)
	}
	if D.Len() != -1 {
		Te.Error("Len should be -1 before the first read")
	}
	if !D.Readable() {
		Te.Error("A freshly opened file should be readable")
	}
	F, err := D.Next()
	if err != nil {
		Te.Fatal(err)
	}
	if D.Len() != 9 || F.Len() != 9 {
		Te.Fatalf("Expected 9 atoms, got %d", F.Len())
	}
	if F.Step != 1000 {
		Te.Errorf("Wrong timestep: %d", F.Step)
	}
	for a := 0; a < 3; a++ {
		if F.Cell[a] != 20 {
			Te.Errorf("Wrong cell: %v", F.Cell)
			break
		}
	}
	wtypes := []int{1, 2, 2, 1, 2, 2, 1, 2, 2}
	for i, t := range F.Types {
		if t != wtypes[i] {
			Te.Errorf("Wrong types: %v", F.Types)
			break
		}
	}
	//the file has its atom lines scrambled; they come out sorted by id
	if F.Pos.At(0, 0) != 2 || F.Pos.At(0, 1) != 2 || F.Pos.At(0, 2) != 2 {
		Te.Errorf("Atom 1 out of place: %v", F.Pos.VecView(0))
	}
	if F.Pos.At(8, 0) != 19.3596 || F.Pos.At(8, 1) != 5.9294 {
		Te.Errorf("Atom 9 out of place: %v", F.Pos.VecView(8))
	}
	if F.Vel == nil || F.Vel.At(0, 0) != 0.1 || F.Vel.At(1, 1) != 0.01 {
		Te.Error("The velocities were not read back")
	}
	_, err = D.Next()
	if err == nil {
		Te.Fatal("Reading past the last frame should fail")
	}
	if _, ok := err.(md.LastFrameError); !ok {
		Te.Errorf("The end of the file should be a LastFrameError, got %T: %v", err, err)
	}
	if D.Readable() {
		Te.Error("The trajectory should not be readable after its last frame")
	}
}

func TestDumpPipeline(Te *testing.T) {
	fmt.Println("Dump analysis pipeline test!")
	D, err := New(rootdirtest + "/water.dump")
	if err != nil {
		Te.Fatal(err)
	}
	F, err := D.Next()
	if err != nil {
		Te.Fatal(err)
	}
	D.Close()
	F.Table = md.NewTypeTable([]string{"O", "H"})
	o := md.DefaultOptions()
	o.BondLengths([][]float64{{0, 1.2}, {1.2, 0}})
	nl, err := F.NeighborList(o)
	if err != nil {
		Te.Fatal(err)
	}
	mols := nl.Molecules()
	if len(mols) != 3 {
		Te.Fatalf("Expected 3 molecules, got %v", mols)
	}
	counts, err := F.CountMols(mols)
	if err != nil {
		Te.Fatal(err)
	}
	if len(counts) != 1 || counts["O1H2"] != 3 {
		Te.Errorf("Wrong formula counts: %v", counts)
	}
	bonds, err := F.CountBonds(nl)
	if err != nil {
		Te.Fatal(err)
	}
	if bonds["O-H"] != 6 || bonds["O-O"] != 0 || bonds["H-H"] != 0 {
		Te.Errorf("Wrong bond counts: %v", bonds)
	}
	p, err := F.SumOfMomentums()
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{4.8, 0.06, -0.06}
	for a := 0; a < 3; a++ {
		if math.Abs(p.At(0, a)-want[a]) > 1e-10 {
			Te.Errorf("Wrong total momentum: %v, wanted %v", p, want)
			break
		}
	}
	fmt.Println("Formulas:", counts, "bonds:", bonds, "total momentum:", p)
}

func TestDumpWriteRead(Te *testing.T) {
	fmt.Println("Dump write/read round trip test!")
	D, err := New(rootdirtest + "/water.dump")
	if err != nil {
		Te.Fatal(err)
	}
	F, err := D.Next()
	if err != nil {
		Te.Fatal(err)
	}
	D.Close()
	for _, name := range []string{"/rewrite.dump", "/rewrite.dump.gz", "/rewrite.dump.zst"} {
		W, err := NewWriter(rootdirtest + name)
		if err != nil {
			Te.Fatal(err)
		}
		F.Step = 1000
		if err = W.WNext(F); err != nil {
			Te.Fatal(err)
		}
		F.Step = 2000
		if err = W.WNext(F); err != nil {
			Te.Fatal(err)
		}
		W.Close()
		R, err := New(rootdirtest + name)
		if err != nil {
			Te.Fatal(err)
		}
		for nf := 0; ; nf++ {
			G, err := R.Next()
			if err != nil {
				if _, ok := err.(md.LastFrameError); ok {
					if nf != 2 {
						Te.Errorf("%s: read back %d frames, wrote 2", name, nf)
					}
					break
				}
				Te.Fatal(err)
			}
			if G.Step != 1000*(nf+1) {
				Te.Errorf("%s: wrong step %d in frame %d", name, G.Step, nf)
			}
			if G.Len() != F.Len() {
				Te.Fatalf("%s: wrong atom number %d", name, G.Len())
			}
			for i := 0; i < F.Len(); i++ {
				if G.Types[i] != F.Types[i] {
					Te.Fatalf("%s: the types changed in the round trip", name)
				}
				for a := 0; a < 3; a++ {
					if math.Abs(G.Pos.At(i, a)-F.Pos.At(i, a)) > 1e-6 {
						Te.Fatalf("%s: atom %d moved in the round trip", name, i)
					}
					if math.Abs(G.Vel.At(i, a)-F.Vel.At(i, a)) > 1e-6 {
						Te.Fatalf("%s: the velocity of %d changed in the round trip", name, i)
					}
				}
			}
		}
		fmt.Println("Round trip through", name, "went well")
	}
}

func TestDumpConcCount(Te *testing.T) {
	fmt.Println("Concurrent trajectory analysis test!")
	D, err := New(rootdirtest + "/water.dump")
	if err != nil {
		Te.Fatal(err)
	}
	o := md.DefaultOptions()
	o.BondLengths([][]float64{{0, 1.2}, {1.2, 0}})
	o.Table(md.NewTypeTable([]string{"O", "H"}))
	counts, err := md.ConcCountMols(D, o)
	if err != nil {
		Te.Fatal(err)
	}
	if len(counts) != 1 || counts[0]["O1H2"] != 3 {
		Te.Errorf("Wrong counts from the file: %v", counts)
	}
}

func TestDumpScaled(Te *testing.T) {
	fmt.Println("Scaled coordinates test!")
	text := "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n2\nITEM: BOX BOUNDS pp pp pp\n0 20\n0 20\n0 20\nITEM: ATOMS id type xs ys zs\n1 1 0.005 0.25 0.25\n2 1 0.99 0.25 0.25\n"
	name := rootdirtest + "/scaled.dump"
	if err := os.WriteFile(name, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	D, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer D.Close()
	F, err := D.Next()
	if err != nil {
		Te.Fatal(err)
	}
	want := [][3]float64{{0.1, 5, 5}, {19.8, 5, 5}}
	for i := range want {
		for a := 0; a < 3; a++ {
			if math.Abs(F.Pos.At(i, a)-want[i][a]) > 1e-8 {
				Te.Errorf("Atom %d axis %d: got %v, wanted %v", i, a, F.Pos.At(i, a), want[i][a])
			}
		}
	}
	o := md.DefaultOptions()
	o.Mode(md.ByCutOff)
	o.CutOff(0.5)
	nl, err := F.NeighborList(o)
	if err != nil {
		Te.Fatal(err)
	}
	if mols := nl.Molecules(); len(mols) != 1 {
		Te.Errorf("The scaled pair should bond across the boundary, got %v", mols)
	}
}

func TestDumpErrors(Te *testing.T) {
	if _, err := New(rootdirtest + "/no_such_file.dump"); err == nil {
		Te.Error("Opening a missing file should fail")
	}
	//a triclinic box
	tric := "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS xy xz yz pp pp pp\n0 10 0\n0 10 0\n0 10 0\nITEM: ATOMS id type x y z\n1 1 1 1 1\n"
	name := rootdirtest + "/triclinic.dump"
	if err := os.WriteFile(name, []byte(tric), 0644); err != nil {
		Te.Fatal(err)
	}
	D, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = D.Next(); err == nil {
		Te.Error("A triclinic box should be rejected")
	} else {
		fmt.Println("Triclinic box rejected as:", err)
	}
	D.Close()
	//a dump without one of the required columns
	nocol := "ITEM: TIMESTEP\n0\nITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS pp pp pp\n0 10\n0 10\n0 10\nITEM: ATOMS id type x y\n1 1 1 1\n"
	name = rootdirtest + "/nocol.dump"
	if err := os.WriteFile(name, []byte(nocol), 0644); err != nil {
		Te.Fatal(err)
	}
	D, err = New(name)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = D.Next(); err == nil {
		Te.Error("A dump without a z column should be rejected")
	}
	D.Close()
	//reading a closed handle
	D2, err := New(rootdirtest + "/water.dump")
	if err != nil {
		Te.Fatal(err)
	}
	D2.Close()
	if _, err := D2.Next(); err == nil {
		Te.Error("Reading a closed trajectory should fail")
	} else if terr, ok := err.(md.TrajError); !ok || !terr.Critical() {
		Te.Errorf("Expected a critical TrajError, got %T: %v", err, err)
	}
}

func BenchmarkDumpRead(B *testing.B) {
	for n := 0; n < B.N; n++ {
		D, err := New(rootdirtest + "/water.dump")
		if err != nil {
			B.Fatal(err)
		}
		for {
			_, err := D.Next()
			if err != nil {
				if _, ok := err.(md.LastFrameError); ok {
					break
				}
				B.Fatal(err)
			}
		}
	}
}
