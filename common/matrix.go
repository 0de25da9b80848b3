package common

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyMatrix  = errors.New("matrix has no rows")
	ErrRaggedMatrix = errors.New("matrix rows differ in length")
)

// Kind is the element type of a Matrix.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Matrix is a rectangular numeric grid. Exactly one of Ints or Floats is
// populated, selected by Kind.
type Matrix struct {
	Kind   Kind
	Ints   [][]int64
	Floats [][]float64
}

// int64 range as float64 bounds; 2^63 itself is out of range.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// IsIntegral reports whether v has no fractional component.
func IsIntegral(v float64) bool {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return false
	}
	return v == math.Trunc(v)
}

// fitsInt64 reports whether an integral v converts to int64 without loss.
func fitsInt64(v float64) bool {
	return v >= minInt64Float && v < maxInt64Float
}

// InferKind returns KindInt if every value is integral and fits in int64.
func InferKind(rows [][]float64) Kind {
	for _, row := range rows {
		for _, v := range row {
			if !IsIntegral(v) || !fitsInt64(v) {
				return KindFloat
			}
		}
	}
	return KindInt
}

// NewMatrix builds a Matrix from parsed rows, choosing the element kind from
// the values. Every row must have the length of the first one.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrEmptyMatrix
	}

	ncol := len(rows[0])
	for i, row := range rows {
		if len(row) != ncol {
			return Matrix{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedMatrix, i, len(row), ncol)
		}
	}

	kind := InferKind(rows)
	if kind == KindFloat {
		floats := make([][]float64, len(rows))
		for i, row := range rows {
			floats[i] = append([]float64(nil), row...)
		}
		return Matrix{Kind: KindFloat, Floats: floats}, nil
	}

	ints := make([][]int64, len(rows))
	for i, row := range rows {
		ints[i] = make([]int64, len(row))
		for j, v := range row {
			ints[i][j] = int64(v)
		}
	}
	return Matrix{Kind: KindInt, Ints: ints}, nil
}

// Dims returns the dimensions of the matrix.
func (m Matrix) Dims() (rows, cols int) {
	return m.Rows(), m.Cols()
}

func (m Matrix) Rows() int {
	if m.Kind == KindInt {
		return len(m.Ints)
	}
	return len(m.Floats)
}

func (m Matrix) Cols() int {
	switch {
	case m.Kind == KindInt && len(m.Ints) > 0:
		return len(m.Ints[0])
	case m.Kind == KindFloat && len(m.Floats) > 0:
		return len(m.Floats[0])
	default:
		return 0
	}
}

// At returns the element at row i, column j as float64.
// It panics if the indices are out of range.
func (m Matrix) At(i, j int) float64 {
	if m.Kind == KindInt {
		return float64(m.Ints[i][j])
	}
	return m.Floats[i][j]
}

// Float64s returns a copy of the matrix as float64 rows regardless of Kind.
func (m Matrix) Float64s() [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
