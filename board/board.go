// Package board holds the field matrices of the game and the pure helpers that read and derive
// them. No helper modifies its input; every result is a fresh deep copy.
package board

const (
	// Width is the number of columns of the playing field
	Width = 10
	// Height is the number of rows of the playing field
	Height = 15
	// Empty is the value of an unoccupied cell. Any other value is occupied.
	Empty = 0
)

// Matrix is a row-major grid of cell values, Matrix[row][column].
type Matrix [][]int

// New returns a width x height matrix with every cell set to fill.
func New(width, height, fill int) Matrix {
	m := make(Matrix, height)
	for y := range m {
		m[y] = make([]int, width)
		if fill == Empty {
			continue
		}
		for x := range m[y] {
			m[y][x] = fill
		}
	}
	return m
}

// Clear returns an empty field of the standard size.
func Clear() Matrix {
	return New(Width, Height, Empty)
}

// Clone returns a deep copy of m. No row of the result aliases a row of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

// IsEmpty reports whether no cell of m is occupied.
func (m Matrix) IsEmpty() bool {
	for _, row := range m {
		for _, v := range row {
			if v != Empty {
				return false
			}
		}
	}
	return true
}

// Rows is the number of rows of m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols is the number of columns of m, taken from its first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Bounds is the tightest rectangle around the occupied cells of a matrix. Start and End are
// inclusive.
type Bounds struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
	Width, Height    int
}

// BoundsOf computes the bounding box of the occupied cells of m. m must contain at least one
// occupied cell; the result for an empty matrix is meaningless.
func BoundsOf(m Matrix) Bounds {
	minX, minY, maxX, maxY := len(m[0]), len(m), -1, -1
	for y, row := range m {
		for x, v := range row {
			if v == Empty {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	return Bounds{
		RowStart: minY,
		RowEnd:   maxY,
		ColStart: minX,
		ColEnd:   maxX,
		Width:    maxX - minX + 1,
		Height:   maxY - minY + 1,
	}
}

// Draw returns a copy of field with the occupied cells of shape painted onto it. (x, y) is where
// the top-left corner of the shape's bounding box lands. Cells of field under an empty cell of the
// shape are kept. The caller guarantees the box fits inside field.
func Draw(field Matrix, shape Matrix, x, y int) Matrix {
	b := BoundsOf(shape)
	out := field.Clone()
	for row, rs := y, b.RowStart; row < y+b.Height; row, rs = row+1, rs+1 {
		for col, cs := x, b.ColStart; col < x+b.Width; col, cs = col+1, cs+1 {
			if shape[rs][cs] != Empty {
				out[row][col] = shape[rs][cs]
			}
		}
	}
	return out
}
