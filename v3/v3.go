/*
 * v3.go, part of intcoord.
 *
 * Copyright 2026 The intcoord Authors
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

// Matrix is a set of vectors in 3D space. Within the package a "vector" is a
// row vector, i.e. the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// data is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Dense2Matrix wraps a gonum Dense with 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	if _, c := A.Dims(); c != cols {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(not3xXMatrix)
	}
	return r
}

// VecView returns a 1x3 view of the ith vector of F. Changes to the view
// are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i < 0 || i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)}
}

// Vec returns a copy of the ith vector of F as a slice.
func (F *Matrix) Vec(i int) []float64 {
	return mat.Row(nil, i, F.Dense)
}

// raw returns the backing slice of a 1x3 matrix.
func (F *Matrix) raw() []float64 {
	r, c := F.Dims()
	if r != 1 || c != cols {
		panic(mat.ErrShape)
	}
	return F.RawRowView(0)
}

// Dot returns the dot product between F and B, both 1x3.
func (F *Matrix) Dot(B *Matrix) float64 {
	return floats.Dot(F.raw(), B.raw())
}

// Norm2 returns the euclidean norm of the 1x3 matrix F. Note that
// the embedded Dense.Norm(2) is the matrix 2-norm, which is computed with an SVD.
func (F *Matrix) Norm2() float64 {
	return floats.Norm(F.raw(), 2)
}

// Distance returns the euclidean distance between the points A and B.
func Distance(A, B *Matrix) float64 {
	return floats.Distance(A.raw(), B.raw(), 2)
}

// Cross puts the cross product a x b on the receiver. All three are 1x3.
// The receiver can be a or b.
func (F *Matrix) Cross(a, b *Matrix) {
	ar, br := a.raw(), b.raw()
	x := ar[1]*br[2] - ar[2]*br[1]
	y := ar[2]*br[0] - ar[0]*br[2]
	z := ar[0]*br[1] - ar[1]*br[0]
	fr := F.raw()
	fr[0], fr[1], fr[2] = x, y, z
}

// SubVec puts A-B on the receiver.
func (F *Matrix) SubVec(A, B *Matrix) {
	floats.SubTo(F.raw(), A.raw(), B.raw())
}

// ScaleVec puts A*s on the receiver.
func (F *Matrix) ScaleVec(s float64, A *Matrix) {
	floats.ScaleTo(F.raw(), s, A.raw())
}

// String returns a human-readable representation of F, one vector per line.
func (F *Matrix) String() string {
	if F == nil || F.Dense == nil {
		return "<nil>"
	}
	r, _ := F.Dims()
	var b strings.Builder
	for i := 0; i < r; i++ {
		v := F.RawRowView(i)
		fmt.Fprintf(&b, "%10.6f %10.6f %10.6f\n", v[0], v[1], v[2])
	}
	return b.String()
}

// Error is the error type for the v3 package. It implements the Decorate
// interface shared by the intcoord packages.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec only returns the current value.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

// PanicMsg is the type used for the messages of the panics of the package.
type PanicMsg string

// Error returns the message.
func (v PanicMsg) Error() string { return string(v) }

const (
	not3xXMatrix       = PanicMsg("v3: A intcoord/v3.Matrix should have 3 columns")
	ErrIndexOutOfRange = PanicMsg("v3: Index out of range")
)
