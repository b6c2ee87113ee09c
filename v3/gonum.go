/*
 * gonum.go, part of gomd.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a Nx3 matrix, where the rows are the 3D vectors of a set of
//atoms (positions, velocities). It embeds a gonum Dense, so all the
//Dense methods (At, Set, Add, Sub, Scale, Norm, etc.) are available on
//a Matrix.
type Matrix struct {
	*mat.Dense
}

//NewMatrix creates and returns a Matrix with the given data. The length
//of data must be divisible by 3, as the matrix will have 3 columns.
func NewMatrix(data []float64) (*Matrix, error) {
	if len(data) == 0 {
		return nil, Error{ErrNotEnoughElements.Error(), []string{"NewMatrix"}, true}
	}
	if len(data)%3 != 0 {
		return nil, Error{ErrNotXx3Matrix.Error(), []string{"NewMatrix"}, true}
	}
	r := len(data) / 3
	return &Matrix{mat.NewDense(r, 3, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 columns.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//Dense2Matrix returns a Matrix backed by the same data as A.
//It panics if A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//VecView returns a view, not a copy, of the ith vector of the matrix,
//as a 1x3 Matrix. Changes in the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//NVecs returns the number of 3D vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//SomeVecs puts in F a matrix consisting of the vectors of A whose
//indexes are given in clist. F must have len(clist) rows.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, _ := A.Dims()
	fr, _ := F.Dims()
	if fr != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		if val >= ar || val < 0 {
			panic(ErrIndexOutOfRange)
		}
		for j := 0; j < 3; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//SwapVecs swaps the vectors i and j of F.
func (F *Matrix) SwapVecs(i, j int) {
	r := F.NVecs()
	if i >= r || j >= r {
		panic(ErrIndexOutOfRange)
	}
	for k := 0; k < 3; k++ {
		tmp := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, tmp)
	}
}

//String returns a neat string representation of a Matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[r+1] = " ]"
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		} else if i == r-1 {
			v[r] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	return strings.Join(v, "")
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//For errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goMD/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("goMD/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goMD/v3: Dimension mismatch")
	ErrIndexOutOfRange   = PanicMsg("goMD/v3: Index out of range")
)
