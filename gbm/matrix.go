package gbm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/joseluissebastia/barropt/contract"
)

// PriceMatrix holds simulated price paths, one row per path. Column j holds
// the price after j steps, so column 0 is the initial price and the last
// column is the terminal price at expiry.
type PriceMatrix struct {
	d *mat.Dense
}

func newPriceMatrix(paths, steps int) *PriceMatrix {
	return &PriceMatrix{d: mat.NewDense(paths, steps+1, nil)}
}

// FromRows builds a PriceMatrix from explicit path rows. Every row must have
// the same length and carry at least two entries, the initial price plus one
// step.
func FromRows(rows [][]float64) (*PriceMatrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: price matrix needs at least one path", contract.ErrInvalidParameter)
	}
	width := len(rows[0])
	if width < 2 {
		return nil, fmt.Errorf("%w: path rows need an initial price and at least one step, got %d columns", contract.ErrInvalidParameter, width)
	}
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", contract.ErrInvalidParameter, i, len(row), width)
		}
	}
	d := mat.NewDense(len(rows), width, nil)
	for i, row := range rows {
		d.SetRow(i, row)
	}
	return &PriceMatrix{d: d}, nil
}

// Paths returns the number of simulated paths (rows).
func (m *PriceMatrix) Paths() int {
	r, _ := m.d.Dims()
	return r
}

// Steps returns the number of time steps per path. The matrix has Steps+1
// columns.
func (m *PriceMatrix) Steps() int {
	_, c := m.d.Dims()
	return c - 1
}

// At returns the price of path i after j steps.
func (m *PriceMatrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Row returns path i backed by the matrix storage, not a copy.
func (m *PriceMatrix) Row(i int) []float64 {
	return m.d.RawRowView(i)
}

// Terminal returns the price of path i at expiry.
func (m *PriceMatrix) Terminal(i int) float64 {
	_, c := m.d.Dims()
	return m.d.At(i, c-1)
}
