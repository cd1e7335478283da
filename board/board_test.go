package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New(3, 5, 7)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 3, m.Cols())
	for _, row := range m {
		for _, v := range row {
			assert.Equal(t, 7, v)
		}
	}
	assert.True(t, Clear().IsEmpty())
	assert.Equal(t, Height, Clear().Rows())
	assert.Equal(t, Width, Clear().Cols())
}

func TestClone(t *testing.T) {
	m := Matrix{
		{1, 0},
		{0, 1},
	}
	c := m.Clone()
	require.Equal(t, m, c)

	c[0][0] = 9
	assert.Equal(t, 1, m[0][0], "clone must not share rows")
	assert.Nil(t, Matrix(nil).Clone())
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name   string
		input  Matrix
		expect Bounds
	}{
		{
			name: "square",
			input: Matrix{
				{1, 1, 0},
				{1, 1, 0},
				{0, 0, 0},
			},
			expect: Bounds{RowStart: 0, RowEnd: 1, ColStart: 0, ColEnd: 1, Width: 2, Height: 2},
		},
		{
			name: "line",
			input: Matrix{
				{0, 0, 0},
				{1, 1, 1},
				{0, 0, 0},
			},
			expect: Bounds{RowStart: 1, RowEnd: 1, ColStart: 0, ColEnd: 2, Width: 3, Height: 1},
		},
		{
			name: "t",
			input: Matrix{
				{0, 1, 0},
				{1, 1, 1},
				{0, 0, 0},
			},
			expect: Bounds{RowStart: 0, RowEnd: 1, ColStart: 0, ColEnd: 2, Width: 3, Height: 2},
		},
		{
			name: "t rotated",
			input: Matrix{
				{0, 1, 0},
				{1, 1, 0},
				{0, 1, 0},
			},
			expect: Bounds{RowStart: 0, RowEnd: 2, ColStart: 0, ColEnd: 1, Width: 2, Height: 3},
		},
		{
			name: "single cell",
			input: Matrix{
				{0, 0, 0},
				{0, 1, 0},
				{0, 0, 0},
			},
			expect: Bounds{RowStart: 1, RowEnd: 1, ColStart: 1, ColEnd: 1, Width: 1, Height: 1},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, BoundsOf(test.input))
		})
	}
}

func TestDraw(t *testing.T) {
	t.Run("t shape at origin", func(t *testing.T) {
		field := New(3, 3, Empty)
		shape := Matrix{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		}
		got := Draw(field, shape, 0, 0)
		assert.Equal(t, Matrix{
			{1, 1, 1},
			{0, 1, 0},
			{0, 0, 0},
		}, got)
		assert.True(t, field.IsEmpty(), "input must not be modified")
	})

	t.Run("keeps occupied cells outside the shape", func(t *testing.T) {
		field := Matrix{
			{0, 0, 0},
			{0, 0, 0},
			{1, 1, 1},
		}
		shape := Matrix{
			{0, 0, 0},
			{2, 2, 2},
			{0, 0, 0},
		}
		assert.Equal(t, Matrix{
			{2, 2, 2},
			{0, 0, 0},
			{1, 1, 1},
		}, Draw(field, shape, 0, 0))
	})

	t.Run("empty shape cells do not erase the field", func(t *testing.T) {
		field := Matrix{
			{5, 5, 5},
			{0, 0, 0},
		}
		shape := Matrix{
			{3, 0, 3},
			{3, 3, 3},
			{0, 0, 0},
		}
		assert.Equal(t, Matrix{
			{3, 5, 3},
			{3, 3, 3},
		}, Draw(field, shape, 0, 0))

		shifted := New(4, 2, Empty)
		shifted[0][2] = 5
		assert.Equal(t, Matrix{
			{0, 3, 5, 3},
			{0, 3, 3, 3},
		}, Draw(shifted, shape, 1, 0))
	})
}
