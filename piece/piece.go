package piece

import (
	"fmt"
	"math/rand/v2"
)

// Kind identifies one of the seven catalog entries. The cell value a kind paints into a field
// is its index plus one, so zero always means an empty cell.
type Kind int

const (
	O Kind = iota
	I
	T
	L
	J
	Z
	S
)

// Count is the number of piece kinds in the catalog.
const Count = 7

var kindNames = [Count]string{"O", "I", "T", "L", "J", "Z", "S"}

func (k Kind) String() string {
	if k < 0 || int(k) >= Count {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Color is the cell value the kind paints into a field.
func (k Kind) Color() int {
	return int(k) + 1
}

// catalog holds the rotation states of every kind, clockwise order. Each state is a 3x3 mask.
var catalog = [Count][][][]int{
	O: {
		{
			{1, 1, 0},
			{1, 1, 0},
			{0, 0, 0},
		},
	},
	I: {
		{
			{0, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		{
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
		},
	},
	T: {
		{
			{0, 1, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		{
			{0, 1, 0},
			{0, 1, 1},
			{0, 1, 0},
		},
		{
			{0, 0, 0},
			{1, 1, 1},
			{0, 1, 0},
		},
		{
			{0, 1, 0},
			{1, 1, 0},
			{0, 1, 0},
		},
	},
	L: {
		{
			{1, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		{
			{0, 1, 1},
			{0, 1, 0},
			{0, 1, 0},
		},
		{
			{0, 0, 0},
			{1, 1, 1},
			{0, 0, 1},
		},
		{
			{0, 1, 0},
			{0, 1, 0},
			{1, 1, 0},
		},
	},
	J: {
		{
			{0, 0, 1},
			{1, 1, 1},
			{0, 0, 0},
		},
		{
			{0, 1, 0},
			{0, 1, 0},
			{0, 1, 1},
		},
		{
			{0, 0, 0},
			{1, 1, 1},
			{1, 0, 0},
		},
		{
			{1, 1, 0},
			{0, 1, 0},
			{0, 1, 0},
		},
	},
	Z: {
		{
			{1, 1, 0},
			{0, 1, 1},
			{0, 0, 0},
		},
		{
			{0, 0, 1},
			{0, 1, 1},
			{0, 1, 0},
		},
		{
			{0, 0, 0},
			{1, 1, 0},
			{0, 1, 1},
		},
		{
			{0, 1, 0},
			{1, 1, 0},
			{1, 0, 0},
		},
	},
	S: {
		{
			{0, 1, 1},
			{1, 1, 0},
			{0, 0, 0},
		},
		{
			{0, 1, 0},
			{0, 1, 1},
			{0, 0, 1},
		},
		{
			{0, 0, 0},
			{0, 1, 1},
			{1, 1, 0},
		},
		{
			{1, 0, 0},
			{1, 1, 0},
			{0, 1, 0},
		},
	},
}

// Shapes returns copies of the rotation masks of k, in clockwise order.
func Shapes(k Kind) [][][]int {
	states := catalog[k]
	out := make([][][]int, len(states))
	for i, mask := range states {
		out[i] = copyMask(mask, 1)
	}
	return out
}

// Rotations is the number of distinct rotation states of k.
func Rotations(k Kind) int {
	return len(catalog[k])
}

// Piece is a catalog entry in a particular rotation state. It is a value: rotating returns a new
// Piece and never changes the receiver.
type Piece struct {
	// Kind is the catalog entry
	Kind Kind
	// Rotation indexes the kind's rotation states, 0..Rotations(Kind)-1
	Rotation int
}

func New(k Kind) Piece {
	return Piece{Kind: k}
}

// Shape returns the current rotation mask, with every filled cell set to the kind's colour.
func (p Piece) Shape() [][]int {
	return copyMask(catalog[p.Kind][p.Rotation], p.Kind.Color())
}

func (p Piece) RotateCW() Piece {
	p.Rotation = (p.Rotation + 1) % Rotations(p.Kind)
	return p
}

func (p Piece) RotateCCW() Piece {
	if p.Rotation == 0 {
		p.Rotation = Rotations(p.Kind) - 1
	} else {
		p.Rotation--
	}
	return p
}

func (p Piece) String() string {
	return fmt.Sprintf("%s/%d", p.Kind, p.Rotation)
}

// Rand draws a uniformly random piece from src and returns it together with the advanced source.
// src is taken by value, so the caller's copy is left untouched and the same source always yields
// the same piece.
func Rand(src rand.PCG) (Piece, rand.PCG) {
	r := rand.New(&src)
	return New(Kind(r.IntN(Count))), src
}

// NewSource returns a generator state seeded from seed.
func NewSource(seed uint64) rand.PCG {
	return *rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func copyMask(mask [][]int, value int) [][]int {
	out := make([][]int, len(mask))
	for y, row := range mask {
		out[y] = make([]int, len(row))
		for x, v := range row {
			if v != 0 {
				out[y][x] = value
			}
		}
	}
	return out
}
