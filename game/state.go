// Package game is the deterministic heart of the game: the state snapshot, the collision
// classifier and the transition function that maps a state and an event to the next state.
package game

import (
	"math/rand/v2"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/piece"
)

const (
	// SpawnX is the column where new pieces appear
	SpawnX = 4
	// SpawnY is the row where new pieces appear
	SpawnY = 0
	// LinesPerLevel is the number of cleared lines that raise the level by one
	LinesPerLevel = 10
)

// State is an immutable snapshot of a game. Transitions never modify a State, they return a new
// one that shares no rows with its predecessor.
type State struct {
	// Paused stops every gameplay event from having an effect
	Paused bool
	// GameOver is set when a new piece could not be placed. Only Restart clears it.
	GameOver bool
	// ToggleColor selects the per-piece colour display. It has no gameplay effect.
	ToggleColor bool
	// Level drives the gravity period, LevelForLines(Lines)
	Level int
	// Lines is the number of lines cleared so far
	Lines int
	// X is the column of the top-left corner of the active piece's bounding box
	X int
	// Y is the row of the top-left corner of the active piece's bounding box
	Y int
	// SpawnX and SpawnY are where pieces appear. A piece that overlaps the stack while sitting
	// exactly on these coordinates ends the game.
	SpawnX, SpawnY int
	// Active is the falling piece
	Active piece.Piece
	// Next is the piece that spawns after Active locks
	Next piece.Piece
	// Stack holds the cells of every locked piece
	Stack board.Matrix
	// Field is Stack with Active drawn at (X, Y). It is derived and never the source of truth.
	Field board.Matrix

	rng rand.PCG
}

// New returns a fresh, paused game whose pieces are drawn from seed.
func New(seed uint64) State {
	return fresh(piece.NewSource(seed))
}

func fresh(src rand.PCG) State {
	s := State{
		Paused: true,
		Level:  1,
		SpawnX: SpawnX,
		SpawnY: SpawnY,
		X:      SpawnX,
		Y:      SpawnY,
		Stack:  board.Clear(),
	}
	s.Active, src = piece.Rand(src)
	s.Next, src = piece.Rand(src)
	s.rng = src
	s.Field = s.render()
	return s
}

// LevelForLines is the level reached after clearing lines rows.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// Shape is the matrix of the active piece in its current rotation.
func (s State) Shape() board.Matrix {
	return s.Active.Shape()
}

// NextShape is the matrix of the queued piece, for previews.
func (s State) NextShape() board.Matrix {
	return s.Next.Shape()
}

func (s State) clone() State {
	s.Stack = s.Stack.Clone()
	s.Field = s.Field.Clone()
	return s
}

func (s State) render() board.Matrix {
	return board.Draw(s.Stack, s.Shape(), s.X, s.Y)
}

func (s *State) spawn() {
	s.Active = s.Next
	s.Next, s.rng = piece.Rand(s.rng)
	s.X = s.SpawnX
	s.Y = s.SpawnY
}
